package annotation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pnrobinson/phenotools/pkg/dateutil"
	"github.com/pnrobinson/phenotools/pkg/termid"
)

const expectedFieldCount = 12

// ParseTSV reads the fixed 12-column annotation table from r. A `#`
// comment line is skipped; a data row with a field count other than 12
// aborts the entire load with a *MalformedRowError, since every later
// column index depends on the schema holding — this is the one place in
// the whole system where a single bad line is fatal rather than skipped.
//
// A row whose disease id or phenotype id fails to parse is reported
// through reporter and skipped rather than aborting the load. A malformed
// biocuration item is reported and dropped while the row is kept; a row
// left with no biocuration gets curator "n/a" and the default lower-bound
// date.
func ParseTSV(r io.Reader, reporter Reporter) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != expectedFieldCount {
			return nil, &MalformedRowError{Row: lineNo, FieldCount: len(fields)}
		}

		rec, ok := parseRow(fields, lineNo, reporter)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading annotation table: %w", err)
	}
	return records, nil
}

func parseRow(fields []string, lineNo int, reporter Reporter) (Record, bool) {
	diseaseID, err := termid.Parse(fields[0])
	if err != nil {
		report(reporter, Err, "MalformedId", fmt.Sprintf("row %d: disease id %q: %v", lineNo, fields[0], err))
		return Record{}, false
	}
	phenotypeID, err := termid.Parse(fields[3])
	if err != nil {
		report(reporter, Err, "MalformedId", fmt.Sprintf("row %d: phenotype id %q: %v", lineNo, fields[3], err))
		return Record{}, false
	}

	if _, ok := DecodeDatabase(diseaseID.Prefix()); !ok {
		report(reporter, Warn, "UnknownDatabase", fmt.Sprintf("row %d: unrecognized database prefix %q", lineNo, diseaseID.Prefix()))
	}

	evidence, ok := DecodeEvidence(fields[5])
	if !ok {
		report(reporter, Warn, "UnknownEvidence", fmt.Sprintf("row %d: unrecognized evidence code %q, defaulting to IEA", lineNo, fields[5]))
	}

	var biocurations []Biocuration
	for _, item := range strings.Split(fields[11], ";") {
		if item == "" {
			continue
		}
		b, err := ParseBiocuration(item)
		if err != nil {
			report(reporter, Warn, "MalformedBiocuration", fmt.Sprintf("row %d: %v", lineNo, err))
			continue
		}
		biocurations = append(biocurations, b)
	}
	if len(biocurations) == 0 {
		biocurations = []Biocuration{{Curator: "n/a", Date: dateutil.DefaultLowerBound()}}
	}

	return Record{
		DiseaseID:    diseaseID,
		DiseaseName:  fields[1],
		Negated:      strings.HasPrefix(fields[2], "NOT"),
		PhenotypeID:  phenotypeID,
		Evidence:     evidence,
		Biocurations: biocurations,
	}, true
}

func report(r Reporter, sev Severity, code, msg string) {
	if r == nil {
		return
	}
	r.Report(sev, code, msg)
}
