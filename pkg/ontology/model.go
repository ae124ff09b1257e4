// Package ontology holds the immutable term/edge model produced by the
// OBO-graph loader and the frozen, CSR-backed graph built from it.
package ontology

import (
	"fmt"

	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

// SynonymType is the closed set of synonym scopes an OBO-graph node can
// declare.
type SynonymType int

const (
	SynonymUnknown SynonymType = iota
	SynonymExact
	SynonymBroad
	SynonymNarrow
	SynonymRelated
)

func (s SynonymType) String() string {
	switch s {
	case SynonymExact:
		return "EXACT"
	case SynonymBroad:
		return "BROAD"
	case SynonymNarrow:
		return "NARROW"
	case SynonymRelated:
		return "RELATED"
	default:
		return "UNKNOWN"
	}
}

// synonymPredicateSuffixes maps the final path segment of a synonym's
// "pred" field to its SynonymType.
var synonymPredicateSuffixes = map[string]SynonymType{
	"hasExactSynonym":   SynonymExact,
	"hasBroadSynonym":   SynonymBroad,
	"hasNarrowSynonym":  SynonymNarrow,
	"hasRelatedSynonym": SynonymRelated,
}

// DecodeSynonymType resolves a synonym predicate suffix. Unknown suffixes
// decode to SynonymUnknown; the caller is expected to warn, not fail.
func DecodeSynonymType(predSuffix string) SynonymType {
	if t, ok := synonymPredicateSuffixes[predSuffix]; ok {
		return t
	}
	return SynonymUnknown
}

// Synonym is a single alternate label for a term.
type Synonym struct {
	Label string
	Type  SynonymType
}

// PropertyValue is a single (predicate, value) pair attached to a term or
// to the ontology itself, decoded through the metadata-predicate registry.
type PropertyValue struct {
	Predicate vocab.MetadataPredicate
	Value     string
}

// Term is the immutable value object the loader produces for one OBO-graph
// class node. Once built it is never mutated; the id-map and every
// alternative-id alias hold the same shared value by reference.
type Term struct {
	ID              termid.ID
	Label           string
	Definition      string
	DefinitionXrefs []termid.ID
	Xrefs           []termid.ID
	AlternativeIDs  []termid.ID
	Properties      []PropertyValue
	Synonyms        []Synonym
	Obsolete        bool
}

// Edge is a directed, typed relation between two term identifiers as
// produced by the loader, before index resolution by the ontology builder.
type Edge struct {
	Source      termid.ID
	Destination termid.ID
	Predicate   vocab.EdgeType
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -%s-> %s", e.Source, e.Predicate, e.Destination)
}
