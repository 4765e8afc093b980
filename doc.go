/*
Package easel is a document core for AI-driven animation authoring.

An agent — conversing in an interactive chat session or calling in over a
stateless remote protocol — builds an animation project incrementally by
issuing structured mutation operations against a shared, serializable
document. Easel owns the data model and its invariants, the mutation
catalog, layer reference resolution, and the keyframe interpolation
evaluator; hosts own transport, authentication, persistence backends and
rendering.

# Architecture

The core is hexagonal. pkg/domain holds the pure data model, pkg/ops the
command table of mutations shared verbatim by every boundary, and
pkg/timeline the evaluator. pkg/ports defines the interfaces a host
plugs into (project storage, distributed locking, access control, usage
metering), with adapters under pkg/adapters for memory, Redis, HTTP
(chi) and MCP.

# Usage

	studio := easel.New(easel.WithStore(memory.NewStore()))

	ctx := context.Background()
	project, err := studio.CreateProject(ctx, "Launch teaser")
	if err != nil {
		log.Fatal(err)
	}

	res, err := studio.Apply(ctx, project.ID, "create_layer", map[string]any{
		"type": "text",
		"name": "Headline",
		"props": map[string]any{"text": "Welcome"},
	})
	if err != nil {
		log.Fatal(err)
	}
	if !res.Success {
		log.Printf("rejected: %s", res.Error)
	}

Mutations are all-or-nothing and never panic past the operation boundary:
failures come back as structured results the agent can read and retry.
*/
package easel
