package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel/pkg/domain"
)

func project(layers ...*domain.Layer) *domain.Project {
	p := domain.NewProject("p1", "Demo")
	p.Layers = layers
	return p
}

func TestResolvePrecedence(t *testing.T) {
	// A layer literally named like another layer's id: the id wins.
	p := project(
		&domain.Layer{ID: "abc", Name: "Headline"},
		&domain.Layer{ID: "def", Name: "abc"},
	)

	id, err := Resolve(p, nil, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestResolveByNameFirstMatchWins(t *testing.T) {
	p := project(
		&domain.Layer{ID: "l1", Name: "Title"},
		&domain.Layer{ID: "l2", Name: "Title"},
	)

	id, err := Resolve(p, nil, "Title")
	require.NoError(t, err)
	assert.Equal(t, "l1", id)
}

func TestResolveAliasWithinTurn(t *testing.T) {
	p := project(
		&domain.Layer{ID: "l1", Name: "A"},
		&domain.Layer{ID: "l2", Name: "B"},
	)
	turn := NewTurn()
	turn.Record("l1")
	turn.Record("l2")

	id, err := Resolve(p, turn, "layer_0")
	require.NoError(t, err)
	assert.Equal(t, "l1", id)

	id, err = Resolve(p, turn, "layer_1")
	require.NoError(t, err)
	assert.Equal(t, "l2", id)
}

func TestResolveAliasOutOfRange(t *testing.T) {
	p := project(&domain.Layer{ID: "l1", Name: "A"})
	turn := NewTurn()
	turn.Record("l1")

	_, err := Resolve(p, turn, "layer_5")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLayerNotFound)
}

func TestResolveAliasWithoutTurn(t *testing.T) {
	p := project(&domain.Layer{ID: "l1", Name: "A"})

	_, err := Resolve(p, nil, "layer_0")
	assert.ErrorIs(t, err, ErrAliasOutsideSession)
}

func TestResolveAliasResetAcrossTurns(t *testing.T) {
	p := project(
		&domain.Layer{ID: "old", Name: "Old"},
		&domain.Layer{ID: "new", Name: "New"},
	)

	first := NewTurn()
	first.Record("old")

	// A fresh turn does not see the previous turn's layers.
	second := NewTurn()
	_, err := Resolve(p, second, "layer_0")
	assert.ErrorIs(t, err, domain.ErrLayerNotFound)

	second.Record("new")
	id, err := Resolve(p, second, "layer_0")
	require.NoError(t, err)
	assert.Equal(t, "new", id)
}

func TestResolveRealNameShadowsAlias(t *testing.T) {
	// A layer actually named "layer_0" resolves by name, not by position.
	p := project(
		&domain.Layer{ID: "l1", Name: "layer_0"},
		&domain.Layer{ID: "l2", Name: "B"},
	)
	turn := NewTurn()
	turn.Record("l2")

	id, err := Resolve(p, turn, "layer_0")
	require.NoError(t, err)
	assert.Equal(t, "l1", id)
}

func TestIsAlias(t *testing.T) {
	assert.True(t, IsAlias("layer_0"))
	assert.True(t, IsAlias("layer_42"))
	assert.False(t, IsAlias("layer_"))
	assert.False(t, IsAlias("layer_x"))
	assert.False(t, IsAlias("Layer_1"))
	assert.False(t, IsAlias("mylayer_1"))
}

func TestResolveUnknown(t *testing.T) {
	p := project()
	_, err := Resolve(p, NewTurn(), "ghost")
	assert.ErrorIs(t, err, domain.ErrLayerNotFound)
}
