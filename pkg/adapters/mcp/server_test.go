package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithProjectIDFoldsParameter(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"layer": map[string]any{"type": "string"},
		},
		"required": []string{"layer"},
	}

	out := withProjectID(schema)

	props := out["properties"].(map[string]any)
	assert.Contains(t, props, "layer")
	require.Contains(t, props, "project_id")
	assert.Equal(t, "string", props["project_id"].(map[string]any)["type"])

	required := out["required"].([]string)
	assert.Contains(t, required, "project_id")
	assert.Contains(t, required, "layer")

	// The input schema is left untouched.
	assert.NotContains(t, schema["properties"], "project_id")
	assert.Equal(t, []string{"layer"}, schema["required"])
}

func TestWithProjectIDHandlesDecodedJSON(t *testing.T) {
	// A schema that round-tripped through encoding/json carries []any.
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []any{"name"},
	}

	out := withProjectID(schema)
	required := out["required"].([]string)
	assert.ElementsMatch(t, []string{"project_id", "name"}, required)
}

func TestWithProjectIDNoRequired(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}

	out := withProjectID(schema)
	assert.Equal(t, []string{"project_id"}, out["required"])
}
