package oboparser

import "encoding/json"

// raw* mirror the OBO-graph JSON wire shape (§6 of the system spec). Each
// nodes/edges element is kept as json.RawMessage so a single malformed
// element can be reported and skipped without losing the rest of the
// array, the same isolation the teacher's mimir_loader.go gives a bad
// record in a Neo4j export.
type rawRoot struct {
	Graphs []rawGraph `json:"graphs"`
}

type rawGraph struct {
	ID    string            `json:"id"`
	Meta  rawMeta           `json:"meta"`
	Nodes []json.RawMessage `json:"nodes"`
	Edges []json.RawMessage `json:"edges"`
}

type rawMeta struct {
	BasicPropertyValues []rawPropertyValue `json:"basicPropertyValues"`
}

type rawNode struct {
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Lbl  string        `json:"lbl"`
	Meta *rawNodeMeta `json:"meta"`
}

type rawNodeMeta struct {
	Deprecated          bool               `json:"deprecated"`
	Definition          *rawDefinition     `json:"definition"`
	Xrefs               []rawXref          `json:"xrefs"`
	Synonyms            []rawSynonym       `json:"synonyms"`
	BasicPropertyValues []rawPropertyValue `json:"basicPropertyValues"`
}

type rawDefinition struct {
	Val   string   `json:"val"`
	Xrefs []string `json:"xrefs"`
}

type rawXref struct {
	Val string `json:"val"`
}

type rawSynonym struct {
	Pred string `json:"pred"`
	Val  string `json:"val"`
}

type rawPropertyValue struct {
	Pred string `json:"pred"`
	Val  string `json:"val"`
}

type rawEdge struct {
	Sub  string `json:"sub"`
	Pred string `json:"pred"`
	Obj  string `json:"obj"`
}
