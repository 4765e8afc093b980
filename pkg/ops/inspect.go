package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// The inspection tools are read-only: they report on the document without
// mutating it. They sit in the same catalog so a model (or MCP client)
// can interleave inspection with mutations using one tool surface.

func registerGetProject(c *Catalog) {
	c.Register(Tool{
		Name:        "get_project",
		Description: "Get the project settings and a summary of its layers.",
		Parameters:  objectSchema(map[string]any{}),
		ReadOnly:    true,
	}, handleGetProject)
}

func handleGetProject(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	return OK("project %q", p.Name).
		With("project", map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"width":       p.Width,
			"height":      p.Height,
			"duration":    p.Duration,
			"fps":         p.FPS,
			"background":  p.Background,
			"font_family": p.FontFamily,
			"layer_count": len(p.Layers),
		}).
		With("layers", layerSummaries(p))
}

func registerListLayers(c *Catalog) {
	c.Register(Tool{
		Name:        "list_layers",
		Description: "List the project's layers in document order with their ids, types and keyframe counts.",
		Parameters:  objectSchema(map[string]any{}),
		ReadOnly:    true,
	}, handleListLayers)
}

func handleListLayers(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	return OK("%d layer(s)", len(p.Layers)).With("layers", layerSummaries(p))
}

func layerSummaries(p *domain.Project) []map[string]any {
	out := make([]map[string]any, 0, len(p.Layers))
	for _, l := range p.Layers {
		summary := map[string]any{
			"id":        l.ID,
			"name":      l.Name,
			"type":      string(l.Type),
			"visible":   l.Visible,
			"locked":    l.Locked,
			"keyframes": len(l.Keyframes),
		}
		if l.ParentID != "" {
			summary["parent_id"] = l.ParentID
		}
		out = append(out, summary)
	}
	return out
}
