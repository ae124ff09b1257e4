package annotation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnrobinson/phenotools/pkg/dateutil"
	"github.com/pnrobinson/phenotools/pkg/ontology"
	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

func twelveColRow(diseaseID, diseaseName, negation, hpoID, evidence, biocuration string) string {
	return row(diseaseID, diseaseName, negation, hpoID, "", evidence, "", "", "", "", "", biocuration)
}

func TestParseTSVValidRow(t *testing.T) {
	data := twelveColRow("OMIM:154700", "Marfan syndrome", "", "HP:0001166", "PCS", "HPO:user[2017-04-01]")
	recs, err := ParseTSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "HP:0001166", recs[0].PhenotypeID.Canonical())
	assert.Equal(t, PCS, recs[0].Evidence)
	assert.False(t, recs[0].Negated)
}

func TestParseTSVMalformedRow(t *testing.T) {
	data := "OMIM:154700\tMarfan syndrome\t\tHP:0001166\t\tPCS\t\t\t\t\t\n" // 11 fields
	_, err := ParseTSV(strings.NewReader(data), nil)
	require.Error(t, err)
	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 1, mre.Row)
	assert.Equal(t, 11, mre.FieldCount)
}

func TestParseTSVCommentsSkipped(t *testing.T) {
	data := "# a comment\n" + twelveColRow("OMIM:1", "d", "", "HP:1", "IEA", "x[2020-01-01]")
	recs, err := ParseTSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestParseTSVNegation(t *testing.T) {
	data := twelveColRow("OMIM:1", "d", "NOT", "HP:1", "IEA", "x[2020-01-01]")
	recs, err := ParseTSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.True(t, recs[0].Negated)
}

func TestBiocurationOldestWins(t *testing.T) {
	data := twelveColRow("OMIM:1", "d", "", "HP:1", "IEA", "HPO:user[2017-04-01];HPO:other[2015-02-02]")
	recs, err := ParseTSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, dateutil.Date{Year: 2015, Month: 2, Day: 2}, recs[0].CurationDate())
}

func TestBiocurationAbsentBracket(t *testing.T) {
	b, err := ParseBiocuration("n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a", b.Curator)
	assert.Equal(t, dateutil.DefaultLowerBound(), b.Date)
}

func TestUnknownEvidenceDefaultsPermissively(t *testing.T) {
	reporter := &SliceReporter{}
	data := twelveColRow("OMIM:1", "d", "", "HP:1", "WEIRD", "x[2020-01-01]")
	recs, err := ParseTSV(strings.NewReader(data), reporter)
	require.NoError(t, err)
	assert.Equal(t, IEA, recs[0].Evidence)
	assert.NotEmpty(t, reporter.Entries)
}

// buildFixtureOntology mirrors pkg/ontology's T1..T5 fixture.
func buildFixtureOntology(t *testing.T) (*ontology.Ontology, map[string]termid.ID) {
	t.Helper()
	ids := make(map[string]termid.ID)
	var terms []ontology.Term
	for _, name := range []string{"T1", "T2", "T3", "T4", "T5"} {
		id := termid.MustParse("HP:" + name)
		ids[name] = id
		terms = append(terms, ontology.Term{ID: id, Label: name})
	}
	edges := []ontology.Edge{
		{Source: ids["T2"], Destination: ids["T1"], Predicate: vocab.IsA},
		{Source: ids["T3"], Destination: ids["T2"], Predicate: vocab.IsA},
		{Source: ids["T4"], Destination: ids["T1"], Predicate: vocab.IsA},
		{Source: ids["T5"], Destination: ids["T4"], Predicate: vocab.IsA},
	}
	o, err := ontology.Build(terms, edges, nil, ontology.Lenient)
	require.NoError(t, err)
	return o, ids
}

func TestRunDescendantsScenario(t *testing.T) {
	o, ids := buildFixtureOntology(t)
	records := []Record{
		{DiseaseID: termid.MustParse("OMIM:1"), DiseaseName: "d1", PhenotypeID: ids["T2"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
		{DiseaseID: termid.MustParse("OMIM:2"), DiseaseName: "d2", PhenotypeID: ids["T3"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
		{DiseaseID: termid.MustParse("OMIM:3"), DiseaseName: "d3", PhenotypeID: ids["T5"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
		{DiseaseID: termid.MustParse("ORPHA:1"), DiseaseName: "d4", PhenotypeID: ids["T2"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
	}
	var buf bytes.Buffer
	lo := dateutil.Date{Year: 1000, Month: 1, Day: 1}
	hi := dateutil.Date{Year: 2026, Month: 12, Day: 31}
	err := RunDescendants(o, records, ids["T1"], lo, hi, &buf, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "#total annotations to terms descending from T1:3")
	assert.Contains(t, out, "#total annotations newer than")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + 3 rows + 2 trailer comments = 6
	assert.Len(t, lines, 6)
}

func TestRunDescendantsMissingTarget(t *testing.T) {
	o, _ := buildFixtureOntology(t)
	var buf bytes.Buffer
	err := RunDescendants(o, nil, termid.ID{}, dateutil.Date{}, dateutil.Date{}, &buf, nil)
	require.ErrorIs(t, err, ErrMissingTarget)
}

func TestRunTopLevelCategories(t *testing.T) {
	o, ids := buildFixtureOntology(t)
	records := []Record{
		{DiseaseID: termid.MustParse("OMIM:1"), PhenotypeID: ids["T3"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
		{DiseaseID: termid.MustParse("OMIM:2"), PhenotypeID: ids["T5"], Biocurations: []Biocuration{{Date: dateutil.Date{Year: 2019, Month: 1, Day: 1}}}},
	}
	topLevels := []termid.ID{ids["T2"], ids["T4"]}
	var buf bytes.Buffer
	RunTopLevelCategories(o, records, topLevels, dateutil.Date{Year: 1000, Month: 1, Day: 1}, dateutil.Date{Year: 2026, Month: 12, Day: 31}, &buf, nil)

	out := buf.String()
	assert.Contains(t, out, "HP:T3\tHP:T2")
	assert.Contains(t, out, "HP:T5\tHP:T4")
}

func TestComputeStats(t *testing.T) {
	records := []Record{
		{DiseaseID: termid.MustParse("OMIM:1"), PhenotypeID: termid.MustParse("HP:1"), Evidence: IEA},
		{DiseaseID: termid.MustParse("OMIM:2"), PhenotypeID: termid.MustParse("HP:1"), Evidence: IEA},
		{DiseaseID: termid.MustParse("ORPHA:1"), PhenotypeID: termid.MustParse("HP:2"), Evidence: PCS},
	}
	stats := ComputeStats(records)
	assert.Equal(t, 3, stats.TotalAnnotations)
	assert.Equal(t, 2, stats.ByDatabase[OMIM].Total)
	assert.Equal(t, 1, len(stats.ByDatabase[OMIM].Terms))
	assert.Equal(t, 2, len(stats.TotalDistinctTerms))

	var buf bytes.Buffer
	stats.WriteReport(&buf)
	assert.Contains(t, buf.String(), "Total annotations: 3")
}
