package ontology

import (
	"sort"

	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

// Stats are the counters the builder records while assembling the CSR
// graph, mirroring the original's edge_count()/is_a_edge_count() family.
type Stats struct {
	OriginalEdgeCount int
	BuiltEdgeCount    int // post-filter, including synthesized inverses
	IsAEdgeCount      int
	SkippedEdgeCount  int
}

// Ontology is the frozen, read-only graph produced by Build. Every query
// method is safe to call concurrently: nothing here is ever mutated after
// construction.
type Ontology struct {
	currentIDs []termid.ID
	idIndex    map[string]int  // canonical id -> index into currentIDs, includes alt-id aliases
	idTerm     map[string]*Term // canonical id -> term, includes obsolete terms and alt-id aliases

	off   []int
	dst   []int
	etype []vocab.EdgeType

	properties []PropertyValue
	stats      Stats
}

// Strict, when passed to Build, makes an edge with an endpoint outside the
// current-term set a fatal InvalidEdgeError instead of a silently skipped,
// counted edge.
type BuildMode int

const (
	Lenient BuildMode = iota
	Strict
)

// Build assembles a frozen Ontology from parsed terms, edges, and
// ontology-level property values. It proceeds in the phases spec'd for
// the ontology builder: term intake and index assignment, edge filtering,
// IS_A inverse synthesis, and CSR construction.
func Build(terms []Term, edges []Edge, properties []PropertyValue, mode BuildMode) (*Ontology, error) {
	o := &Ontology{
		idIndex:    make(map[string]int),
		idTerm:     make(map[string]*Term),
		properties: properties,
	}

	// Phase 1: term intake.
	var current []termid.ID
	for i := range terms {
		t := &terms[i]
		o.idTerm[t.ID.Canonical()] = t
		for _, alt := range t.AlternativeIDs {
			o.idTerm[alt.Canonical()] = t
		}
		if !t.Obsolete {
			current = append(current, t.ID)
		}
	}
	sort.Slice(current, func(i, j int) bool { return current[i].Less(current[j]) })
	o.currentIDs = current
	for i, id := range current {
		o.idIndex[id.Canonical()] = i
		t := o.idTerm[id.Canonical()]
		for _, alt := range t.AlternativeIDs {
			o.idIndex[alt.Canonical()] = i
		}
	}

	// Phase 2: edge filter.
	o.stats.OriginalEdgeCount = len(edges)
	valid := make([]Edge, 0, len(edges))
	for _, e := range edges {
		_, srcOK := o.idIndex[e.Source.Canonical()]
		_, dstOK := o.idIndex[e.Destination.Canonical()]
		if !srcOK || !dstOK {
			if mode == Strict {
				return nil, &InvalidEdgeError{Edge: e}
			}
			o.stats.SkippedEdgeCount++
			continue
		}
		valid = append(valid, e)
		if e.Predicate == vocab.IsA {
			o.stats.IsAEdgeCount++
		}
	}

	// Phase 3: inverse synthesis.
	withInverses := make([]Edge, 0, len(valid)*2)
	withInverses = append(withInverses, valid...)
	for _, e := range valid {
		if e.Predicate == vocab.IsA {
			withInverses = append(withInverses, Edge{
				Source:      e.Destination,
				Destination: e.Source,
				Predicate:   vocab.IsAInverse,
			})
		}
	}

	// Phase 4: CSR build.
	type resolved struct {
		srcIdx, dstIdx int
		etype          vocab.EdgeType
	}
	res := make([]resolved, len(withInverses))
	for i, e := range withInverses {
		res[i] = resolved{
			srcIdx: o.idIndex[e.Source.Canonical()],
			dstIdx: o.idIndex[e.Destination.Canonical()],
			etype:  e.Predicate,
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].srcIdx != res[j].srcIdx {
			return res[i].srcIdx < res[j].srcIdx
		}
		return res[i].dstIdx < res[j].dstIdx
	})

	n := len(o.currentIDs)
	o.off = make([]int, n+1)
	o.dst = make([]int, len(res))
	o.etype = make([]vocab.EdgeType, len(res))
	for i, r := range res {
		o.off[r.srcIdx+1]++
		o.dst[i] = r.dstIdx
		o.etype[i] = r.etype
	}
	for v := 0; v < n; v++ {
		o.off[v+1] += o.off[v]
	}

	o.stats.BuiltEdgeCount = len(withInverses)

	return o, nil
}

// Stats returns the builder's edge counters.
func (o *Ontology) Stats() Stats { return o.stats }

// Properties returns the ontology-level property values parsed from the
// graph's own basicPropertyValues.
func (o *Ontology) Properties() []PropertyValue { return o.properties }

// CurrentIDs returns the sorted list of non-obsolete primary term ids.
func (o *Ontology) CurrentIDs() []termid.ID { return o.currentIDs }
