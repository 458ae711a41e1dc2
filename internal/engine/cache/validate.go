package cache

import (
	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// validateResource computes the validity verdict for one resource.
// Caller holds st.mu.
//
// A missing resource is a broken reference: a legitimate invalid outcome,
// not an error. Primitive resources are valid by definition and need no
// memoization. For everything else the memoized verdict is authoritative
// until an invalidation resets it; recomputation walks the dependency
// list depth-first and short-circuits on the first broken member, then
// checks that every referenced file resolves to something that exists.
func validateResource(st *cacheState, resolver ports.FileResolver, id string) bool {
	res, ok := st.resources[id]
	if !ok {
		return false
	}
	if res.IsPrimitive() {
		return true
	}

	switch res.Validity() {
	case domain.ValidityValid:
		return true
	case domain.ValidityInvalid:
		return false
	}

	for _, dep := range res.ListDependencies() {
		if !validateResource(st, resolver, dep) {
			res.SetValidity(domain.ValidityInvalid)
			return false
		}
	}
	for _, uri := range res.ListFileRefs() {
		if !resolver.Exists(uri) {
			res.SetValidity(domain.ValidityInvalid)
			return false
		}
	}

	res.SetValidity(domain.ValidityValid)
	return true
}

// cascadeVerdict pushes a fresh verdict for id to its direct dependents
// and enqueues a validation task for each, so the walk over the used-by
// graph becomes a frontier of independently scheduled tasks instead of
// one recursive traversal. Caller holds st.mu.
//
// A valid verdict only resets dependents to unknown: their own
// dependency lists may still contain other broken members, so they must
// recompute. An invalid verdict condemns dependents directly, and still
// schedules them so their dependents are visited in turn.
func cascadeVerdict(st *cacheState, resolver ports.FileResolver, id string, valid bool) {
	for _, dep := range st.graph.UsedBy(id) {
		res, ok := st.resources[dep]
		if !ok {
			// Dependent already deleted; the graph rebuild that drops
			// this edge is queued behind us.
			continue
		}
		if valid {
			res.SetValidity(domain.ValidityUnknown)
		} else {
			res.SetValidity(domain.ValidityInvalid)
		}
		st.submitQueue = append(st.submitQueue, &validateResourceTask{
			state:    st,
			resolver: resolver,
			id:       dep,
		})
	}
}
