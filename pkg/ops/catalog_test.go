package ops

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/refs"
)

// testCatalog returns a catalog with deterministic ids: id-1, id-2, ...
func testCatalog() *Catalog {
	n := 0
	return NewCatalog(WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
}

func demoProject() *domain.Project {
	return domain.NewProject("p1", "Demo")
}

// mustApply applies a tool and fails the test on an unsuccessful result.
func mustApply(t *testing.T, c *Catalog, p *domain.Project, scope *Scope, name string, args map[string]any) (*domain.Project, Result) {
	t.Helper()
	next, res := c.Apply(p, scope, name, args)
	require.True(t, res.Success, "tool %s failed: %s", name, res.Error)
	return next, res
}

func TestCatalogRegistersFullOperationSet(t *testing.T) {
	c := testCatalog()
	tools := c.Tools()

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Equal(t, []string{
		"create_layer",
		"edit_layer",
		"animate_layer",
		"update_keyframe",
		"remove_keyframe",
		"remove_layer",
		"group_layers",
		"ungroup_layers",
		"configure_project",
		"get_project",
		"list_layers",
	}, names)

	for _, tool := range tools {
		readOnly := tool.Name == "get_project" || tool.Name == "list_layers"
		assert.Equal(t, readOnly, tool.ReadOnly, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.Equal(t, "object", tool.Parameters["type"], tool.Name)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := testCatalog()

	tool, ok := c.Lookup("animate_layer")
	require.True(t, ok)
	assert.Equal(t, "animate_layer", tool.Name)

	_, ok = c.Lookup("render_frame")
	assert.False(t, ok)
}

func TestApplyUnknownTool(t *testing.T) {
	c := testCatalog()
	p := demoProject()

	next, res := c.Apply(p, &Scope{}, "render_frame", nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unknown tool")
	assert.Same(t, p, next)
}

func TestApplySuccessReturnsNewDocument(t *testing.T) {
	c := testCatalog()
	p := demoProject()

	next, res := mustApply(t, c, p, &Scope{}, "create_layer", map[string]any{
		"type": "text",
		"name": "Headline",
	})
	assert.NotSame(t, p, next)
	assert.Len(t, next.Layers, 1)
	assert.Empty(t, p.Layers, "the input document is never mutated")
	assert.Equal(t, "id-1", res.Detail("layer_id"))
}

func TestApplyFailureReturnsOriginalDocument(t *testing.T) {
	c := testCatalog()
	p := demoProject()
	p, _ = mustApply(t, c, p, &Scope{}, "create_layer", map[string]any{
		"type": "text",
		"name": "Headline",
	})

	// A failing mutation after a partial write must not leak the partial
	// state: the handler only ever saw a clone.
	next, res := c.Apply(p, &Scope{}, "create_layer", map[string]any{
		"type": "hologram",
		"name": "Nope",
	})
	assert.False(t, res.Success)
	assert.Same(t, p, next)
	assert.Len(t, next.Layers, 1)
}

func TestApplyContainsHandlerPanics(t *testing.T) {
	c := testCatalog()
	c.Register(Tool{Name: "explode", Parameters: objectSchema(map[string]any{})},
		func(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
			panic("boom")
		})
	p := demoProject()

	next, res := c.Apply(p, &Scope{}, "explode", nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "internal error")
	assert.Same(t, p, next)
}

func TestApplyRecordsAliasesAcrossCalls(t *testing.T) {
	c := testCatalog()
	p := demoProject()
	scope := &Scope{Turn: refs.NewTurn()}

	p, _ = mustApply(t, c, p, scope, "create_layer", map[string]any{
		"type": "text",
		"name": "First",
	})
	p, _ = mustApply(t, c, p, scope, "create_layer", map[string]any{
		"type": "shape",
		"name": "Second",
	})

	// layer_1 refers to the second layer created in this turn.
	p, res := mustApply(t, c, p, scope, "edit_layer", map[string]any{
		"layer": "layer_1",
		"name":  "Renamed",
	})
	assert.Equal(t, "id-2", res.Detail("layer_id"))
	assert.Equal(t, "Renamed", p.Layer("id-2").Name)
}

func TestApplyRejectsAliasWithoutTurn(t *testing.T) {
	c := testCatalog()
	p := demoProject()
	p, _ = mustApply(t, c, p, &Scope{}, "create_layer", map[string]any{
		"type": "text",
		"name": "First",
	})

	_, res := c.Apply(p, &Scope{}, "edit_layer", map[string]any{
		"layer": "layer_0",
		"name":  "Renamed",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, refs.ErrAliasOutsideSession.Error())
}

func TestResultDetails(t *testing.T) {
	res := OK("done").With("a", 1).With("b", "two")
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Detail("a"))
	assert.Equal(t, "two", res.Detail("b"))
	assert.Nil(t, res.Detail("missing"))

	fail := Failf("bad %s", "input")
	assert.False(t, fail.Success)
	assert.Equal(t, "bad input", fail.Error)
	assert.Nil(t, fail.Detail("a"))
}
