package ontology

import (
	"github.com/pnrobinson/phenotools/pkg/termid"
	"github.com/pnrobinson/phenotools/pkg/vocab"
)

// Lookup resolves an id — primary or alternative — to its term. Obsolete
// terms remain lookupable even though they never appear in CurrentIDs or
// in any edge.
func (o *Ontology) Lookup(id termid.ID) (*Term, bool) {
	t, ok := o.idTerm[id.Canonical()]
	return t, ok
}

// outEdges returns the [off[v], off[v+1]) slice bounds for vertex index v.
func (o *Ontology) outEdges(v int) (dst []int, etype []vocab.EdgeType) {
	lo, hi := o.off[v], o.off[v+1]
	return o.dst[lo:hi], o.etype[lo:hi]
}

// Parents returns the ids reachable by a single edge of the given
// predicate from id. Defaults to IS_A when predicate is the zero value.
func (o *Ontology) Parents(id termid.ID, predicate vocab.EdgeType) ([]termid.ID, error) {
	v, ok := o.idIndex[id.Canonical()]
	if !ok {
		return nil, &UnknownIDError{ID: id}
	}
	dsts, etypes := o.outEdges(v)
	var out []termid.ID
	for i, et := range etypes {
		if et == predicate {
			out = append(out, o.currentIDs[dsts[i]])
		}
	}
	return out, nil
}

// ExistsPath runs a depth-first search from src to dst following only
// edges of the given predicate, guarded by a visited set so the
// traversal terminates even if future data contains cycles. Unknown
// endpoints resolve to false, never an error — exists_path is a query,
// not a building block.
func (o *Ontology) ExistsPath(src, dst termid.ID, predicate vocab.EdgeType) bool {
	srcIdx, ok := o.idIndex[src.Canonical()]
	if !ok {
		return false
	}
	dstIdx, ok := o.idIndex[dst.Canonical()]
	if !ok {
		return false
	}
	if srcIdx == dstIdx {
		return true
	}

	visited := make(map[int]bool)
	stack := []int{srcIdx}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		if v == dstIdx {
			return true
		}
		dsts, etypes := o.outEdges(v)
		for i, et := range etypes {
			if et == predicate && !visited[dsts[i]] {
				stack = append(stack, dsts[i])
			}
		}
	}
	return false
}

// Ancestors returns the set of ids reachable from id via the given
// predicate, including id itself. Unlike ExistsPath this raises on an
// unknown id: it is used as a building block elsewhere and a silent
// empty result would mask a caller bug.
func (o *Ontology) Ancestors(id termid.ID, predicate vocab.EdgeType) (map[termid.ID]bool, error) {
	startIdx, ok := o.idIndex[id.Canonical()]
	if !ok {
		return nil, &UnknownIDError{ID: id}
	}

	visited := make(map[int]bool)
	stack := []int{startIdx}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		dsts, etypes := o.outEdges(v)
		for i, et := range etypes {
			if et == predicate && !visited[dsts[i]] {
				stack = append(stack, dsts[i])
			}
		}
	}

	out := make(map[termid.ID]bool, len(visited))
	for idx := range visited {
		out[o.currentIDs[idx]] = true
	}
	return out, nil
}

// Descendants returns every current id u such that ExistsPath(u, id, IS_A)
// holds, implemented via the IS_A_INVERSE adjacency from id rather than a
// full scan of current_ids.
func (o *Ontology) Descendants(id termid.ID) ([]termid.ID, error) {
	set, err := o.Ancestors(id, vocab.IsAInverse)
	if err != nil {
		return nil, err
	}
	out := make([]termid.ID, 0, len(set))
	for _, cid := range o.currentIDs {
		if set[cid] {
			out = append(out, cid)
		}
	}
	return out, nil
}

// HaveCommonAncestor reports whether t1 and t2 share a common IS_A
// ancestor other than root. It computes t1's ancestor set (excluding
// root) via vertex indices, then DFS's from t2 — also via vertex indices
// — stopping at root, returning true on the first hit in t1's set.
//
// The original implementation pushes edge-array offsets onto the second
// traversal's stack instead of vertex indices; that is a bug and is not
// reproduced here.
func (o *Ontology) HaveCommonAncestor(t1, t2, root termid.ID) (bool, error) {
	if t1.Equal(root) || t2.Equal(root) {
		return false, nil
	}

	rootIdx, ok := o.idIndex[root.Canonical()]
	if !ok {
		return false, &UnknownIDError{ID: root}
	}

	t1Ancestors, err := o.Ancestors(t1, vocab.IsA)
	if err != nil {
		return false, err
	}
	delete(t1Ancestors, root)

	t2Idx, ok := o.idIndex[t2.Canonical()]
	if !ok {
		return false, &UnknownIDError{ID: t2}
	}

	visited := make(map[int]bool)
	stack := []int{t2Idx}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] || v == rootIdx {
			continue
		}
		visited[v] = true
		if t1Ancestors[o.currentIDs[v]] {
			return true, nil
		}
		dsts, etypes := o.outEdges(v)
		for i, et := range etypes {
			if et == vocab.IsA && dsts[i] != rootIdx && !visited[dsts[i]] {
				stack = append(stack, dsts[i])
			}
		}
	}
	return false, nil
}

// TopLevelCategory returns the first id c in topLevels such that
// ExistsPath(q, c, IS_A) holds. The order of topLevels is the tie-break.
// ok is false if no configured top-level id is reachable from q.
func (o *Ontology) TopLevelCategory(q termid.ID, topLevels []termid.ID) (category termid.ID, ok bool) {
	for _, c := range topLevels {
		if o.ExistsPath(q, c, vocab.IsA) {
			return c, true
		}
	}
	return termid.ID{}, false
}

// TopLevelChildren returns the direct IS_A children of root: every
// current id u with an IS_A edge to root, i.e. an IS_A_INVERSE edge from
// root.
func (o *Ontology) TopLevelChildren(root termid.ID) ([]termid.ID, error) {
	return o.Parents(root, vocab.IsAInverse)
}
