// Package content implements the workspace content adapters: the
// JSON-backed resource type, the workspace loader and store, and the
// resource URI resolver.
package content

import (
	"maps"
	"slices"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// validityProp is the property bag key memoizing the validity verdict.
// Absent means not yet computed.
const validityProp = "is-valid"

var _ ports.Resource = (*Resource)(nil)

// Resource is a generic workspace resource. The editor's type-specific
// widgets only ever touch the opaque data map; the cache only ever
// touches the capability surface.
type Resource struct {
	id        string
	typ       string
	name      string
	primitive bool
	deps      []string
	files     []string
	data      map[string]any
	props     map[string]any
	userProps map[string]any
}

// NewResource creates an empty user-defined resource.
func NewResource(id, typ, name string) *Resource {
	return &Resource{
		id:        id,
		typ:       typ,
		name:      name,
		data:      make(map[string]any),
		props:     make(map[string]any),
		userProps: make(map[string]any),
	}
}

// NewPrimitive creates one of the engine's built-in resources. Primitive
// resources have fixed ids, no dependencies and no file references, and
// are never persisted.
func NewPrimitive(id, typ, name string) *Resource {
	r := NewResource(id, typ, name)
	r.primitive = true
	return r
}

// ID returns the unique resource identifier.
func (r *Resource) ID() string { return r.id }

// Type returns the resource type tag.
func (r *Resource) Type() string { return r.typ }

// Name returns the human-readable resource name.
func (r *Resource) Name() string { return r.name }

// IsPrimitive reports whether this is a built-in engine resource.
func (r *Resource) IsPrimitive() bool { return r.primitive }

// AddDependency records a dependency on another resource id.
func (r *Resource) AddDependency(id string) {
	r.deps = append(r.deps, id)
}

// AddFileRef records a reference to an external file URI.
func (r *Resource) AddFileRef(uri string) {
	r.files = append(r.files, uri)
}

// ListDependencies returns the ids of the resources this one depends on.
func (r *Resource) ListDependencies() []string {
	return slices.Clone(r.deps)
}

// ListFileRefs returns the URIs of the external files this one touches.
func (r *Resource) ListFileRefs() []string {
	return slices.Clone(r.files)
}

// Validity reads the memoized verdict from the property bag.
func (r *Resource) Validity() domain.Validity {
	v, ok := r.props[validityProp]
	if !ok {
		return domain.ValidityUnknown
	}
	if b, ok := v.(bool); ok && b {
		return domain.ValidityValid
	}
	return domain.ValidityInvalid
}

// SetValidity stores the verdict in the property bag. Unknown clears it.
func (r *Resource) SetValidity(v domain.Validity) {
	if v == domain.ValidityUnknown {
		delete(r.props, validityProp)
		return
	}
	r.props[validityProp] = v == domain.ValidityValid
}

// SetProperty stores an editor property on the resource.
func (r *Resource) SetProperty(key string, value any) {
	r.props[key] = value
}

// Property returns an editor property and whether it is set.
func (r *Resource) Property(key string) (any, bool) {
	v, ok := r.props[key]
	return v, ok
}

// DeleteProperty removes an editor property.
func (r *Resource) DeleteProperty(key string) {
	delete(r.props, key)
}

// SetUserProperty stores a per-user property on the resource. User
// properties go to the private workspace file, not the shared one.
func (r *Resource) SetUserProperty(key string, value any) {
	r.userProps[key] = value
}

// UserProperty returns a per-user property and whether it is set.
func (r *Resource) UserProperty(key string) (any, bool) {
	v, ok := r.userProps[key]
	return v, ok
}

// SetData stores a value in the opaque content data map.
func (r *Resource) SetData(key string, value any) {
	r.data[key] = value
}

// Clone returns a deep copy of the resource.
func (r *Resource) Clone() ports.Resource {
	return &Resource{
		id:        r.id,
		typ:       r.typ,
		name:      r.name,
		primitive: r.primitive,
		deps:      slices.Clone(r.deps),
		files:     slices.Clone(r.files),
		data:      maps.Clone(r.data),
		props:     maps.Clone(r.props),
		userProps: maps.Clone(r.userProps),
	}
}

// Snapshot returns the serializable form of the resource.
func (r *Resource) Snapshot() domain.ResourceSnapshot {
	return domain.ResourceSnapshot{
		ID:             r.id,
		Type:           r.typ,
		Name:           r.name,
		Dependencies:   slices.Clone(r.deps),
		Files:          slices.Clone(r.files),
		Data:           maps.Clone(r.data),
		Properties:     maps.Clone(r.props),
		UserProperties: maps.Clone(r.userProps),
	}
}
