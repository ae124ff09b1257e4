package annotation

import (
	"fmt"
	"strings"

	"github.com/pnrobinson/phenotools/pkg/dateutil"
	"github.com/pnrobinson/phenotools/pkg/termid"
)

// Biocuration is a (curator, date) stamp on an annotation line.
type Biocuration struct {
	Curator string
	Date    dateutil.Date
}

// ParseBiocuration parses one semicolon-delimited biocuration item,
// pattern "<curator>[<ISO-date>]". Absence of '[' yields curator "n/a"
// and the default lower-bound date rather than a parse error — a
// biocuration with no date stamp is legitimate, legacy data.
func ParseBiocuration(s string) (Biocuration, error) {
	i := strings.IndexByte(s, '[')
	if i < 0 {
		return Biocuration{Curator: "n/a", Date: dateutil.DefaultLowerBound()}, nil
	}
	curator := s[:i]
	j := strings.LastIndexByte(s, ']')
	if j < 0 || j <= i {
		j = len(s)
	}
	d, err := dateutil.Parse(s[i+1 : j])
	if err != nil {
		return Biocuration{}, fmt.Errorf("biocuration %q: %w", s, err)
	}
	return Biocuration{Curator: curator, Date: d}, nil
}

// String renders the biocuration in its canonical "curator[YYYY-MM-DD]"
// form.
func (b Biocuration) String() string {
	return fmt.Sprintf("%s[%s]", b.Curator, b.Date)
}

// Record is a single disease-to-phenotype annotation row.
type Record struct {
	DiseaseID    termid.ID
	DiseaseName  string
	Negated      bool
	PhenotypeID  termid.ID
	Evidence     EvidenceCode
	Biocurations []Biocuration
}

// CurationDate is the record's canonical curation date: the oldest date
// among its biocurations.
func (r Record) CurationDate() dateutil.Date {
	if len(r.Biocurations) == 0 {
		return dateutil.DefaultLowerBound()
	}
	oldest := r.Biocurations[0].Date
	for _, b := range r.Biocurations[1:] {
		if dateutil.Compare(b.Date, oldest) < 0 {
			oldest = b.Date
		}
	}
	return oldest
}

// NegationFlag renders the negation state the way the output format
// expects it: the literal token "NOT", or empty.
func (r Record) NegationFlag() string {
	if r.Negated {
		return "NOT"
	}
	return ""
}

// BiocurationString renders all biocurations semicolon-joined, matching
// the input format's encoding.
func (r Record) BiocurationString() string {
	parts := make([]string, len(r.Biocurations))
	for i, b := range r.Biocurations {
		parts[i] = b.String()
	}
	return strings.Join(parts, ";")
}

// Database resolves the record's source database from its disease id
// prefix.
func (r Record) Database() (Database, bool) {
	return DecodeDatabase(r.DiseaseID.Prefix())
}
