package annotation

import (
	"fmt"
	"io"
	"sort"

	"github.com/pnrobinson/phenotools/pkg/termid"
)

// DatabaseStats is the per-database slice of the statistics sidecar: an
// evidence-code histogram and the set of distinct phenotype terms the
// database's annotations used.
type DatabaseStats struct {
	EvidenceCounts map[EvidenceCode]int
	Terms          map[termid.ID]bool
	Total          int
}

// Stats is the diagnostic aggregation described in §4.7's "Statistics
// sidecar": per-database, per-evidence-code annotation counts and
// distinct-term-usage counts. It has no effect on either analysis; it
// exists purely for quality-control reporting, matching the original's
// unconditional output_annotation_stats.
type Stats struct {
	ByDatabase         map[Database]*DatabaseStats
	TotalAnnotations   int
	TotalDistinctTerms map[termid.ID]bool
}

// ComputeStats aggregates per-database evidence-code counts and distinct
// term usage over the record set, regardless of date window. Records
// whose disease prefix is not a recognized database are not counted.
func ComputeStats(records []Record) Stats {
	s := Stats{
		ByDatabase:         make(map[Database]*DatabaseStats),
		TotalDistinctTerms: make(map[termid.ID]bool),
	}
	for _, rec := range records {
		db, ok := rec.Database()
		if !ok {
			continue
		}
		bucket, exists := s.ByDatabase[db]
		if !exists {
			bucket = &DatabaseStats{
				EvidenceCounts: make(map[EvidenceCode]int),
				Terms:          make(map[termid.ID]bool),
			}
			s.ByDatabase[db] = bucket
		}
		bucket.EvidenceCounts[rec.Evidence]++
		bucket.Terms[rec.PhenotypeID] = true
		bucket.Total++

		s.TotalAnnotations++
		s.TotalDistinctTerms[rec.PhenotypeID] = true
	}
	return s
}

// WriteReport prints the sidecar in the teacher-adjacent "label: count
// (pct%)" style the original annotcommand produces: per database, each
// evidence code's count and share of that database's total, then a
// grand total and a distinct-terms-used summary.
func (s Stats) WriteReport(w io.Writer) {
	databases := make([]Database, 0, len(s.ByDatabase))
	for db := range s.ByDatabase {
		databases = append(databases, db)
	}
	sort.Slice(databases, func(i, j int) bool { return databases[i] < databases[j] })

	for _, db := range databases {
		bucket := s.ByDatabase[db]
		for _, code := range []EvidenceCode{IEA, TAS, PCS} {
			count := bucket.EvidenceCounts[code]
			pct := 0.0
			if bucket.Total > 0 {
				pct = 100 * float64(count) / float64(bucket.Total)
			}
			fmt.Fprintf(w, "%s/%s: %d (%.1f%%)\n", db, code, count, pct)
		}
		fmt.Fprintf(w, "%s (total): %d\n", db, bucket.Total)
	}

	fmt.Fprintf(w, "Total annotations: %d\n", s.TotalAnnotations)
	fmt.Fprintln(w, "HPO terms used for annotations:")
	for _, db := range databases {
		fmt.Fprintf(w, "  %s: %d\n", db, len(s.ByDatabase[db].Terms))
	}
	fmt.Fprintf(w, "  total distinct: %d\n", len(s.TotalDistinctTerms))
}
