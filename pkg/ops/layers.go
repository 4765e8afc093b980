package ops

import (
	"github.com/easel-ai/easel/pkg/domain"
)

// RemoveLayerInput is the declared input shape of remove_layer.
type RemoveLayerInput struct {
	Layer string `json:"layer"`
}

func registerRemoveLayer(c *Catalog) {
	c.Register(Tool{
		Name:        "remove_layer",
		Description: "Remove a layer and all of its keyframes. Layers grouped under it stay and become ungrouped.",
		Parameters: objectSchema(map[string]any{
			"layer": stringParam("Layer reference: id, name, or positional alias (interactive sessions only)"),
		}, "layer"),
	}, handleRemoveLayer)
}

func handleRemoveLayer(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in RemoveLayerInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	layer, err := scope.resolveLayer(p, in.Layer)
	if err != nil {
		return Fail(err)
	}

	name := layer.Name
	p.RemoveLayer(layer.ID)

	return OK("removed layer %q", name).With("layer_id", layer.ID)
}

// GroupLayersInput is the declared input shape of group_layers.
type GroupLayersInput struct {
	Layers []string `json:"layers"`
	Name   string   `json:"name"`
}

func registerGroupLayers(c *Catalog) {
	c.Register(Tool{
		Name:        "group_layers",
		Description: "Create a new group layer and move the referenced layers under it. Layers already in another group are moved, not rejected; grouping a group nests it.",
		Parameters: objectSchema(map[string]any{
			"layers": arrayParam("Layer references to group", stringParam("Layer reference")),
			"name":   stringParam("Name of the new group"),
		}, "layers", "name"),
	}, handleGroupLayers)
}

func handleGroupLayers(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in GroupLayersInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}
	if len(in.Layers) == 0 {
		return Failf("group_layers requires at least one layer")
	}

	// Resolve every reference before touching anything so a single bad
	// ref fails the whole operation.
	members := make([]*domain.Layer, 0, len(in.Layers))
	seen := make(map[string]bool, len(in.Layers))
	for _, ref := range in.Layers {
		layer, err := scope.resolveLayer(p, ref)
		if err != nil {
			return Fail(err)
		}
		if seen[layer.ID] {
			continue
		}
		seen[layer.ID] = true
		members = append(members, layer)
	}

	group := &domain.Layer{
		ID:        c.newID(),
		Name:      in.Name,
		Type:      domain.LayerGroup,
		Transform: domain.DefaultTransform(),
		Style:     domain.DefaultStyle(),
		Visible:   true,
		Keyframes: []*domain.Keyframe{},
		Props:     c.registry.Defaults(domain.LayerGroup),
	}
	p.Layers = append(p.Layers, group)
	scope.record(group.ID)

	memberIDs := make([]string, len(members))
	for i, layer := range members {
		layer.ParentID = group.ID
		memberIDs[i] = layer.ID
	}

	return OK("grouped %d layer(s) under %q", len(members), in.Name).
		With("layer_id", group.ID).
		With("member_ids", memberIDs)
}

// UngroupLayersInput is the declared input shape of ungroup_layers.
type UngroupLayersInput struct {
	Group string `json:"group"`
}

func registerUngroupLayers(c *Catalog) {
	c.Register(Tool{
		Name:        "ungroup_layers",
		Description: "Dissolve a group: its children move to the group's former parent (or the root) and the group layer is removed.",
		Parameters: objectSchema(map[string]any{
			"group": stringParam("Group layer reference"),
		}, "group"),
	}, handleUngroupLayers)
}

func handleUngroupLayers(c *Catalog, p *domain.Project, scope *Scope, args map[string]any) Result {
	var in UngroupLayersInput
	if err := decodeArgs(args, &in); err != nil {
		return Fail(err)
	}

	group, err := scope.resolveLayer(p, in.Group)
	if err != nil {
		return Fail(err)
	}
	if group.Type != domain.LayerGroup {
		return Failf("%s: %q is a %s layer", domain.ErrNotAGroup, group.Name, group.Type)
	}

	var freed []string
	for _, layer := range p.Layers {
		if layer.ParentID == group.ID {
			layer.ParentID = group.ParentID
			freed = append(freed, layer.ID)
		}
	}
	p.RemoveLayer(group.ID)

	return OK("ungrouped %d layer(s) from %q", len(freed), group.Name).
		With("layer_id", group.ID).
		With("member_ids", freed)
}
