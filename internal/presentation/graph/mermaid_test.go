package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easel-ai/easel/pkg/domain"
)

func TestGenerateMermaidShapes(t *testing.T) {
	p := domain.NewProject("p-1", "Demo")
	p.Layers = []*domain.Layer{
		{ID: "grp-1", Name: "Scene", Type: domain.LayerGroup, Visible: true},
		{ID: "txt-1", Name: "Headline", Type: domain.LayerText, Visible: true, ParentID: "grp-1"},
		{ID: "shp-1", Name: "Backdrop", Type: domain.LayerShape, Visible: true},
	}

	out := GenerateMermaid(p)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `project_p_1(("Demo"))`)
	assert.Contains(t, out, `grp_1[["Scene"]]`, "groups render as subroutines")
	assert.Contains(t, out, `txt_1[/"Headline"/]`, "text layers render as parallelograms")
	assert.Contains(t, out, `shp_1["Backdrop"]`)
	assert.Contains(t, out, "grp_1 --> txt_1", "children link to their group")
	assert.Contains(t, out, "project_p_1 --> shp_1", "root layers link to the project")
}

func TestGenerateMermaidKeyframeAnnotation(t *testing.T) {
	p := domain.NewProject("p1", "Demo")
	p.Layers = []*domain.Layer{{
		ID: "l1", Name: "Headline", Type: domain.LayerText, Visible: true,
		Keyframes: []*domain.Keyframe{
			{ID: "k1", Time: 0, Property: "opacity", Value: 0.0},
			{ID: "k2", Time: 1, Property: "opacity", Value: 1.0},
		},
	}}

	out := GenerateMermaid(p)
	assert.Contains(t, out, "2 keyframes")
}

func TestGenerateMermaidInvisibleLayerUsesDottedEdge(t *testing.T) {
	p := domain.NewProject("p1", "Demo")
	p.Layers = []*domain.Layer{
		{ID: "l1", Name: "Ghost", Type: domain.LayerShape, Visible: false},
	}

	out := GenerateMermaid(p)
	assert.Contains(t, out, "-.-> l1")
	assert.NotContains(t, out, "--> l1")
}

func TestGenerateMermaidEscapesLabels(t *testing.T) {
	p := domain.NewProject("p1", `Say "hi"`)

	out := GenerateMermaid(p)
	assert.Contains(t, out, "Say 'hi'")
	assert.NotContains(t, out, `"Say "hi""`)
}

func TestGenerateMermaidSanitizesIDs(t *testing.T) {
	p := domain.NewProject("a.b/c", "Demo")
	p.Layers = []*domain.Layer{
		{ID: "layer-1.main", Name: "A", Type: domain.LayerShape, Visible: true},
	}

	out := GenerateMermaid(p)
	assert.Contains(t, out, "project_a_b_c")
	assert.Contains(t, out, "layer_1_main")
}
