package oboparser

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is wrapped by MalformedDocumentError.
var ErrMalformedDocument = errors.New("malformed obo-graph document")

// MalformedDocumentError reports a structural failure: missing "graphs",
// a non-array nodes/edges field, or invalid top-level JSON. This always
// aborts the load — there is no term model to salvage.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed obo-graph document: %s", e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error { return ErrMalformedDocument }

// ErrUnknownPredicate is wrapped by UnknownPredicateError.
var ErrUnknownPredicate = errors.New("unknown edge predicate")

// UnknownPredicateError reports an edge whose predicate key has no
// registry entry. Unlike an unknown metadata predicate (non-fatal), this
// aborts the load: an edge with unrecognized semantics could silently
// corrupt every downstream path query.
type UnknownPredicateError struct {
	Key string
}

func (e *UnknownPredicateError) Error() string {
	return fmt.Sprintf("unknown edge predicate: %q", e.Key)
}

func (e *UnknownPredicateError) Unwrap() error { return ErrUnknownPredicate }
