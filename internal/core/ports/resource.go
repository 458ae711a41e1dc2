// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ember/internal/core/domain"

// Resource is the capability surface the cache consumes from one piece of
// user content. Implementations are supplied per resource type by the
// surrounding editor; the cache never interprets content beyond this
// interface.
//
//go:generate mockgen -source=resource.go -destination=mocks/mock_resource.go -package=mocks
type Resource interface {
	// ID returns the unique, immutable identifier of the resource.
	ID() string

	// Type returns the resource type tag, e.g. "material" or "entity".
	Type() string

	// IsPrimitive reports whether the resource is one of the engine's
	// built-in, axiomatically valid resources. A primitive resource never
	// has dependencies or file references.
	IsPrimitive() bool

	// ListDependencies returns the ids of the resources this resource
	// depends on. Ids may be dangling; the caller decides what that means.
	ListDependencies() []string

	// ListFileRefs returns the URIs of the external files this resource
	// touches, e.g. "ws://textures/player.png".
	ListFileRefs() []string

	// Validity returns the memoized validity verdict from the resource's
	// property bag. ValidityUnknown means not yet computed.
	Validity() domain.Validity

	// SetValidity stores the verdict in the property bag.
	// ValidityUnknown clears it.
	SetValidity(v domain.Validity)

	// Clone returns a deep copy. The cache stores copies so that editor
	// mutations of the original never race with worker tasks.
	Clone() Resource

	// Snapshot returns the serializable form of the resource for
	// workspace persistence.
	Snapshot() domain.ResourceSnapshot
}
