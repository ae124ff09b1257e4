// Package termid provides canonical PREFIX:LOCAL term identifiers for
// bio-ontology classes, parsed from CURIEs, IRIs, and a handful of
// legacy shorthand forms (HGNC, ICD10, ORCID).
package termid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every error Parse/ParseURL return.
var ErrMalformed = errors.New("malformed id")

// MalformedError reports an identifier string that could not be parsed
// by any of the recognized forms.
type MalformedError struct {
	Input string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed id: %q", e.Input)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// ID is a canonical "PREFIX:LOCAL" term identifier. The zero value is not
// a valid ID; always construct through Parse or ParseURL.
type ID struct {
	value string
	sep   int // index of the ':' separator in value
}

// Parse builds an ID from a CURIE, a slash-terminated IRI, or one of the
// legacy shorthand forms. It tries, in order:
//
//  1. tail after the final '/' (an IRI is reduced to its last path segment)
//  2. a ':'-split CURIE
//  3. a '_'-split OBO IRI tail (PREFIX_LOCAL, '_' upgraded to ':')
//  4. the hgnc/<N>, ICD10<code>, and orcid.org/<N> special forms
//
// It returns a *MalformedError if none of the forms apply.
func Parse(s string) (ID, error) {
	cp := s
	if i := strings.LastIndexByte(cp, '/'); i >= 0 {
		cp = cp[i+1:]
	}

	if i := strings.IndexByte(cp, ':'); i >= 0 {
		return ID{value: cp, sep: i}, nil
	}

	if i := strings.IndexByte(cp, '_'); i >= 0 {
		v := cp[:i] + ":" + cp[i+1:]
		return ID{value: v, sep: i}, nil
	}

	if strings.Contains(s, "hgnc") {
		v := "HGNC:" + cp
		return ID{value: v, sep: 4}, nil
	}
	if strings.Contains(s, "ICD10") {
		v := "ICD10:" + cp
		return ID{value: v, sep: 5}, nil
	}

	if i := strings.Index(s, "orcid.org/"); i >= 0 {
		v := "ORCID:" + cp
		return ID{value: v, sep: 5}, nil
	}

	return ID{}, &MalformedError{Input: s}
}

// ParseURL builds an ID from a full IRI. It special-cases "…/hgnc/<N>"
// URLs before falling back to Parse on the final path segment.
func ParseURL(s string) (ID, error) {
	if i := strings.Index(s, "hgnc/"); i >= 0 {
		v := "HGNC:" + s[i+len("hgnc/"):]
		return ID{value: v, sep: 4}, nil
	}

	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return ID{}, &MalformedError{Input: s}
	}
	return Parse(s[i+1:])
}

// MustParse is Parse but panics on error; useful for fixture/test data and
// package-level constants built from literal strings.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Canonical returns the "PREFIX:LOCAL" string form.
func (id ID) Canonical() string { return id.value }

// String implements fmt.Stringer.
func (id ID) String() string { return id.value }

// Prefix returns the namespace prefix, e.g. "HP" for "HP:0001166".
func (id ID) Prefix() string {
	if id.sep <= 0 || id.sep > len(id.value) {
		return ""
	}
	return id.value[:id.sep]
}

// Local returns the local identifier, e.g. "0001166" for "HP:0001166".
func (id ID) Local() string {
	if id.sep < 0 || id.sep+1 > len(id.value) {
		return ""
	}
	return id.value[id.sep+1:]
}

// IsZero reports whether id is the zero value (never produced by Parse).
func (id ID) IsZero() bool { return id.value == "" }

// Less implements the identifier total ordering: lexicographic comparison
// of the canonical string.
func (id ID) Less(other ID) bool { return id.value < other.value }

// Equal reports whether two identifiers have the same canonical string.
func (id ID) Equal(other ID) bool { return id.value == other.value }

// MarshalText implements encoding.TextMarshaler so an ID round-trips
// through JSON/YAML as its canonical string.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
