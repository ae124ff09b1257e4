// Package annotation parses the disease-to-phenotype annotation corpus
// and runs the descendants-of-target and top-level-category analyses
// against a built ontology.
package annotation

import (
	"errors"
	"fmt"
)

// ErrMalformedRow is wrapped by MalformedRowError.
var ErrMalformedRow = errors.New("malformed annotation row")

// MalformedRowError reports a data row without exactly 12 tab-separated
// fields. Unlike a bad OBO-graph node, this aborts the whole load: the
// fixed-width schema is load-bearing for every later column index.
type MalformedRowError struct {
	Row        int
	FieldCount int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed annotation row %d: %d fields, want 12", e.Row, e.FieldCount)
}

func (e *MalformedRowError) Unwrap() error { return ErrMalformedRow }

// ErrMissingTarget is returned by RunDescendants when no target term was
// configured.
var ErrMissingTarget = errors.New("missing target term")

// ErrUnresolvedTopLevel reports an annotated term with no configured
// top-level id reachable from it; non-fatal, reported through the
// Reporter and the row is skipped.
var ErrUnresolvedTopLevel = errors.New("unresolved top-level category")
