package ontology

import (
	"errors"
	"fmt"

	"github.com/pnrobinson/phenotools/pkg/termid"
)

// ErrInvalidEdge is wrapped by InvalidEdgeError.
var ErrInvalidEdge = errors.New("invalid edge")

// InvalidEdgeError reports an edge whose endpoint does not resolve to a
// current term, raised only when the builder runs in strict mode.
type InvalidEdgeError struct {
	Edge Edge
}

func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("invalid edge %s: endpoint not a current term", e.Edge)
}

func (e *InvalidEdgeError) Unwrap() error { return ErrInvalidEdge }

// ErrUnknownID is returned by Ancestors for an id with no resolvable term,
// since Ancestors is used as a building block and unknown input there is
// a caller bug, not a recoverable query outcome.
var ErrUnknownID = errors.New("unknown term id")

// UnknownIDError reports an id absent from the ontology's id index.
type UnknownIDError struct {
	ID termid.ID
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown term id: %s", e.ID)
}

func (e *UnknownIDError) Unwrap() error { return ErrUnknownID }
