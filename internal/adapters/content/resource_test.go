package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ember/internal/adapters/content"
	"go.trai.ch/ember/internal/core/domain"
)

func TestResource_ValidityRoundTrip(t *testing.T) {
	res := content.NewResource("ship", "entity", "Ship")

	assert.Equal(t, domain.ValidityUnknown, res.Validity())

	res.SetValidity(domain.ValidityValid)
	assert.Equal(t, domain.ValidityValid, res.Validity())

	res.SetValidity(domain.ValidityInvalid)
	assert.Equal(t, domain.ValidityInvalid, res.Validity())

	// Unknown clears the property instead of storing a third value.
	res.SetValidity(domain.ValidityUnknown)
	assert.Equal(t, domain.ValidityUnknown, res.Validity())
	_, ok := res.Property("is-valid")
	assert.False(t, ok)
}

func TestResource_ValidityLivesInPropertyBag(t *testing.T) {
	res := content.NewResource("ship", "entity", "Ship")
	res.SetValidity(domain.ValidityValid)

	v, ok := res.Property("is-valid")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestResource_CloneIsDeep(t *testing.T) {
	res := content.NewResource("ship", "entity", "Ship")
	res.AddDependency("hull_material")
	res.AddFileRef("ws://models/ship.obj")
	res.SetProperty("pinned", true)
	res.SetUserProperty("collapsed", true)
	res.SetData("mass", 12.5)
	res.SetValidity(domain.ValidityValid)

	cp, ok := res.Clone().(*content.Resource)
	require.True(t, ok)

	// Mutating the copy leaves the original alone.
	cp.SetValidity(domain.ValidityInvalid)
	cp.SetProperty("pinned", false)
	cp.AddDependency("extra")

	assert.Equal(t, domain.ValidityValid, res.Validity())
	pinned, _ := res.Property("pinned")
	assert.Equal(t, true, pinned)
	assert.Equal(t, []string{"hull_material"}, res.ListDependencies())
	assert.Equal(t, []string{"hull_material", "extra"}, cp.ListDependencies())
}

func TestResource_Primitive(t *testing.T) {
	res := content.NewPrimitive("_default_material", "material", "Default")

	assert.True(t, res.IsPrimitive())
	assert.Empty(t, res.ListDependencies())
	assert.Empty(t, res.ListFileRefs())
}

func TestResource_Snapshot(t *testing.T) {
	res := content.NewResource("ship", "entity", "Ship")
	res.AddDependency("hull_material")
	res.AddFileRef("ws://models/ship.obj")
	res.SetData("mass", 12.5)
	res.SetProperty("pinned", true)
	res.SetUserProperty("collapsed", true)

	snap := res.Snapshot()

	assert.Equal(t, "ship", snap.ID)
	assert.Equal(t, "entity", snap.Type)
	assert.Equal(t, "Ship", snap.Name)
	assert.Equal(t, []string{"hull_material"}, snap.Dependencies)
	assert.Equal(t, []string{"ws://models/ship.obj"}, snap.Files)
	assert.Equal(t, map[string]any{"mass": 12.5}, snap.Data)
	assert.Equal(t, map[string]any{"pinned": true}, snap.Properties)
	assert.Equal(t, map[string]any{"collapsed": true}, snap.UserProperties)
}
