// Package oboparser decodes an OBO-graph JSON document into the typed
// term/edge/property model consumed by pkg/ontology's builder.
package oboparser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pnrobinson/phenotools/pkg/ontology"
	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

// Result is everything Load yields: the parsed model plus the non-fatal
// error list, exposed verbatim to the caller for quality-control
// reporting — mirroring MimirImportResult.Errors in the teacher loader.
type Result struct {
	Terms      []ontology.Term
	Edges      []ontology.Edge
	Properties []ontology.PropertyValue
	Errors     []string
}

// Load decodes graphs[0] of an OBO-graph JSON document from r. Structural
// failures (missing graphs, non-object nodes/edges array elements that
// aren't even valid JSON) abort with a *MalformedDocumentError. A single
// malformed node, a node of a non-CLASS type, or an unknown edge
// predicate is recorded differently depending on severity: bad nodes are
// skipped and logged in Result.Errors, but an edge with an unrecognized
// predicate is fatal per §4.2, since the graph's structural meaning would
// otherwise be silently incomplete.
func Load(r io.Reader) (*Result, error) {
	var root rawRoot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error()}
	}
	if len(root.Graphs) == 0 {
		return nil, &MalformedDocumentError{Reason: "no graphs present"}
	}
	graph := root.Graphs[0]

	res := &Result{}

	for _, prop := range graph.Meta.BasicPropertyValues {
		res.Properties = append(res.Properties, ontology.PropertyValue{
			Predicate: vocab.DecodeMetadataPredicate(finalSegment(prop.Pred)),
			Value:     prop.Val,
		})
	}

	for i, raw := range graph.Nodes {
		term, skip, err := parseNode(raw)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("node[%d]: %v", i, err))
			continue
		}
		if skip {
			continue
		}
		for _, syn := range term.Synonyms {
			if syn.Type == ontology.SynonymUnknown {
				res.Errors = append(res.Errors, fmt.Sprintf("node[%d]: %s: unknown synonym type for %q", i, term.ID, syn.Label))
			}
		}
		res.Terms = append(res.Terms, *term)
	}

	for i, raw := range graph.Edges {
		edge, err := parseEdge(raw)
		if err != nil {
			if upe, ok := err.(*UnknownPredicateError); ok {
				return nil, upe
			}
			res.Errors = append(res.Errors, fmt.Sprintf("edge[%d]: %v", i, err))
			continue
		}
		res.Edges = append(res.Edges, *edge)
	}

	return res, nil
}

// parseNode decodes one nodes[] element. skip is true for non-CLASS
// nodes, which are silently dropped per §4.2 (not an error).
func parseNode(raw json.RawMessage) (term *ontology.Term, skip bool, err error) {
	var n rawNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, false, fmt.Errorf("decode: %w", err)
	}
	if n.Type != "CLASS" {
		return nil, true, nil
	}
	if n.ID == "" {
		return nil, false, fmt.Errorf("missing id")
	}
	id, err := termid.ParseURL(n.ID)
	if err != nil {
		return nil, false, fmt.Errorf("id %q: %w", n.ID, err)
	}
	if n.Lbl == "" {
		return nil, false, fmt.Errorf("missing lbl for %s", id)
	}

	t := &ontology.Term{ID: id, Label: n.Lbl}

	if n.Meta == nil {
		return t, false, nil
	}
	t.Obsolete = n.Meta.Deprecated

	if n.Meta.Definition != nil {
		t.Definition = n.Meta.Definition.Val
		for _, x := range n.Meta.Definition.Xrefs {
			xid, err := termid.Parse(x)
			if err != nil {
				continue
			}
			t.DefinitionXrefs = append(t.DefinitionXrefs, xid)
		}
	}

	for _, x := range n.Meta.Xrefs {
		xid, err := termid.Parse(x.Val)
		if err != nil {
			continue
		}
		t.Xrefs = append(t.Xrefs, xid)
	}

	for _, syn := range n.Meta.Synonyms {
		t.Synonyms = append(t.Synonyms, ontology.Synonym{
			Label: syn.Val,
			Type:  ontology.DecodeSynonymType(finalSegment(syn.Pred)),
		})
	}

	for _, pv := range n.Meta.BasicPropertyValues {
		pred := vocab.DecodeMetadataPredicate(finalSegment(pv.Pred))
		if pred == vocab.HasAlternativeId {
			altID, err := termid.Parse(pv.Val)
			if err != nil {
				continue
			}
			t.AlternativeIDs = append(t.AlternativeIDs, altID)
			continue
		}
		t.Properties = append(t.Properties, ontology.PropertyValue{Predicate: pred, Value: pv.Val})
	}

	return t, false, nil
}

func parseEdge(raw json.RawMessage) (*ontology.Edge, error) {
	var e rawEdge
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	src, err := termid.ParseURL(e.Sub)
	if err != nil {
		return nil, fmt.Errorf("sub %q: %w", e.Sub, err)
	}
	dst, err := termid.ParseURL(e.Obj)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", e.Obj, err)
	}
	key := finalSegment(e.Pred)
	et, err := vocab.DecodeEdgeType(key)
	if err != nil {
		return nil, &UnknownPredicateError{Key: key}
	}
	return &ontology.Edge{Source: src, Destination: dst, Predicate: et}, nil
}

// finalSegment returns the final path segment of a predicate IRI, after
// the last '/'. When a '#' occurs after that '/', the segment keeps its
// "ns#fragment" form (e.g. "oboInOwl#hasAlternativeId").
func finalSegment(s string) string {
	if i := strings.LastIndexAny(s, "/#"); i >= 0 {
		tail := s[i+1:]
		if s[i] == '#' {
			// keep "ns#fragment" form for registries keyed that way
			if j := strings.LastIndexByte(s[:i], '/'); j >= 0 {
				return s[j+1:]
			}
			return s
		}
		return tail
	}
	return s
}
