/*
Package dsl provides a fluent builder for constructing animation
projects in code, mirroring what the mutation catalog produces at
runtime. It is the programmatic companion to the agent-driven path:
tests, examples and fixtures use it to assemble valid documents without
going through tool calls.

	project, err := dsl.New("Launch teaser").
		Canvas(1280, 720).
		Duration(6).
		Layer(dsl.Text("Headline").
			Prop("text", "Welcome").
			Key("opacity", 0, 0.0).
			Key("opacity", 1, 1.0)).
		Build()

Build validates props against the builtin schemas and keyframe values
against their property descriptors, returning every problem at once.
*/
package dsl
