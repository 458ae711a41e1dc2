package domain

import "slices"

// DependencyLister is the minimal capability the graph builder needs from
// a resource: its identity is the map key, this supplies the edges.
type DependencyLister interface {
	IsPrimitive() bool
	ListDependencies() []string
}

// DependencyGraph maps a resource id to the set of ids that depend on it
// (reverse "used-by" edges). It is derived state: rebuilt wholesale from
// the resource store, never patched incrementally.
type DependencyGraph struct {
	usedBy map[string]map[string]struct{}
}

// NewDependencyGraph returns an empty graph with no nodes.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{usedBy: make(map[string]map[string]struct{})}
}

// BuildDependencyGraph walks every resource in the store and produces the
// reverse-edge map. Every id in the store gets a node, including leaves
// with an empty used-by set. Dependency ids that resolve to no resource
// (dangling references) contribute no edge; the validator detects them
// later. The walk follows non-primitive dependencies recursively so that
// resources reached only transitively still get their nodes created.
func BuildDependencyGraph[R DependencyLister](store map[string]R) *DependencyGraph {
	g := NewDependencyGraph()
	visited := make(map[string]bool, len(store))

	var walk func(id string)
	walk = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true

		res, ok := store[id]
		if !ok {
			// Dangling reference, no node and no edges.
			return
		}
		g.ensure(id)
		if res.IsPrimitive() {
			return
		}
		for _, dep := range res.ListDependencies() {
			if _, ok := store[dep]; !ok {
				continue
			}
			g.ensure(dep)
			g.usedBy[dep][id] = struct{}{}
			walk(dep)
		}
	}

	for id := range store {
		walk(id)
	}
	return g
}

func (g *DependencyGraph) ensure(id string) {
	if _, ok := g.usedBy[id]; !ok {
		g.usedBy[id] = make(map[string]struct{})
	}
}

// UsedBy returns the ids of the resources that directly depend on id,
// sorted for deterministic iteration. The returned slice is owned by the
// caller.
func (g *DependencyGraph) UsedBy(id string) []string {
	set, ok := g.usedBy[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for dep := range set {
		out = append(out, dep)
	}
	slices.Sort(out)
	return out
}

// HasNode reports whether the graph has a node for id.
func (g *DependencyGraph) HasNode(id string) bool {
	_, ok := g.usedBy[id]
	return ok
}

// NodeCount returns the number of nodes in the graph.
func (g *DependencyGraph) NodeCount() int {
	return len(g.usedBy)
}
