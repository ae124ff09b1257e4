package annotation

import (
	"fmt"
	"io"

	"github.com/pnrobinson/phenotools/pkg/dateutil"
	"github.com/pnrobinson/phenotools/pkg/ontology"
	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

// RunDescendants implements the descendants-of-target analysis (§4.7):
// every OMIM-sourced annotation whose phenotype descends from target via
// IS_A is counted, and those whose curation date falls in [lo, hi] are
// emitted. Output ordering matches input ordering. target must be
// non-zero — this analysis requires a configured target term.
func RunDescendants(ont *ontology.Ontology, records []Record, target termid.ID, lo, hi dateutil.Date, sink io.Writer, reporter Reporter) error {
	if target.IsZero() {
		return ErrMissingTarget
	}
	label := target.Canonical()
	if t, ok := ont.Lookup(target); ok {
		label = t.Label
	}
	fmt.Fprintf(sink, "#%s (%s)\n", target, label)

	var total, inWindow int
	for _, rec := range records {
		db, _ := rec.Database()
		if db != OMIM {
			continue
		}
		if !ont.ExistsPath(rec.PhenotypeID, target, vocab.IsA) {
			continue
		}
		total++
		if dateutil.InWindow(rec.CurationDate(), lo, hi) {
			inWindow++
			fmt.Fprintf(sink, "%s\t%s\t%s\t%s\t%s\n",
				rec.DiseaseID, rec.DiseaseName, rec.PhenotypeID, rec.NegationFlag(), rec.BiocurationString())
		}
	}

	fmt.Fprintf(sink, "#total annotations to terms descending from %s:%d\n", label, total)
	fmt.Fprintf(sink, "#total annotations newer than %s:%d\n", lo, inWindow)
	return nil
}

// RunTopLevelCategories implements the top-level categorization analysis
// (§4.7): every OMIM-sourced, in-window annotation's phenotype is
// resolved to the first reachable id in topLevels; unresolved ids are
// reported and skipped.
func RunTopLevelCategories(ont *ontology.Ontology, records []Record, topLevels []termid.ID, lo, hi dateutil.Date, sink io.Writer, reporter Reporter) {
	for _, rec := range records {
		db, _ := rec.Database()
		if db != OMIM {
			continue
		}
		if !dateutil.InWindow(rec.CurationDate(), lo, hi) {
			continue
		}
		cat, ok := ont.TopLevelCategory(rec.PhenotypeID, topLevels)
		if !ok {
			report(reporter, Err, "UnresolvedTopLevel", fmt.Sprintf("%s: no configured top-level category reachable", rec.PhenotypeID))
			continue
		}
		fmt.Fprintf(sink, "%s\t%s\n", rec.PhenotypeID, cat)
	}
}
