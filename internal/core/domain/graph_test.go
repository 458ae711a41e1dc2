package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ember/internal/core/domain"
)

type stubResource struct {
	primitive bool
	deps      []string
}

func (r stubResource) IsPrimitive() bool          { return r.primitive }
func (r stubResource) ListDependencies() []string { return r.deps }

func TestBuildDependencyGraph(t *testing.T) {
	tests := []struct {
		name      string
		store     map[string]stubResource
		usedBy    map[string][]string
		nodeCount int
	}{
		{
			name:      "empty store",
			store:     map[string]stubResource{},
			usedBy:    map[string][]string{},
			nodeCount: 0,
		},
		{
			name: "linear chain",
			store: map[string]stubResource{
				"a": {},
				"b": {deps: []string{"a"}},
				"c": {deps: []string{"b"}},
			},
			usedBy: map[string][]string{
				"a": {"b"},
				"b": {"c"},
				"c": nil,
			},
			nodeCount: 3,
		},
		{
			name: "diamond",
			store: map[string]stubResource{
				"base":  {},
				"left":  {deps: []string{"base"}},
				"right": {deps: []string{"base"}},
				"top":   {deps: []string{"left", "right"}},
			},
			usedBy: map[string][]string{
				"base": {"left", "right"},
				"left": {"top"},
			},
			nodeCount: 4,
		},
		{
			name: "dangling dependency contributes no edge",
			store: map[string]stubResource{
				"a": {deps: []string{"ghost"}},
			},
			usedBy: map[string][]string{
				"a":     nil,
				"ghost": nil,
			},
			nodeCount: 1,
		},
		{
			name: "primitive dependencies are leaves",
			store: map[string]stubResource{
				"_default_material": {primitive: true},
				"crate":             {deps: []string{"_default_material"}},
			},
			usedBy: map[string][]string{
				"_default_material": {"crate"},
			},
			nodeCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.BuildDependencyGraph(tt.store)
			require.Equal(t, tt.nodeCount, g.NodeCount())
			for id, want := range tt.usedBy {
				assert.Equal(t, want, g.UsedBy(id), "used-by of %s", id)
			}
		})
	}
}

func TestBuildDependencyGraph_Idempotent(t *testing.T) {
	store := map[string]stubResource{
		"a": {},
		"b": {deps: []string{"a"}},
	}

	first := domain.BuildDependencyGraph(store)
	second := domain.BuildDependencyGraph(store)

	assert.Equal(t, first.NodeCount(), second.NodeCount())
	assert.Equal(t, first.UsedBy("a"), second.UsedBy("a"))
}

func TestDependencyGraph_HasNode(t *testing.T) {
	g := domain.BuildDependencyGraph(map[string]stubResource{"a": {}})

	assert.True(t, g.HasNode("a"))
	assert.False(t, g.HasNode("b"))
	assert.Nil(t, g.UsedBy("b"))
}

func TestValidity_String(t *testing.T) {
	assert.Equal(t, "unknown", domain.ValidityUnknown.String())
	assert.Equal(t, "valid", domain.ValidityValid.String())
	assert.Equal(t, "invalid", domain.ValidityInvalid.String())
}
