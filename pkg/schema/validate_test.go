package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsPartialData(t *testing.T) {
	s := Schema{"text": String(), "fontSize": Number()}

	// Absent keys are fine: defaults are merged before validation.
	assert.NoError(t, Validate(s, map[string]any{"text": "hi"}))
	assert.NoError(t, Validate(s, map[string]any{}))
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	s := Schema{"text": String()}

	err := Validate(s, map[string]any{"txet": "typo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"txet"`)
	assert.Contains(t, err.Error(), "not defined in schema")
}

func TestValidateAggregatesAllFailures(t *testing.T) {
	s := Schema{"fontSize": Number(), "color": Color()}

	err := Validate(s, map[string]any{
		"fontSize": "big",
		"color":    "red",
		"extra":    1,
	})
	require.Error(t, err)
	assert.Len(t, ValidationErrors(err), 3)
}

func TestValidateErrorOrderIsDeterministic(t *testing.T) {
	s := Schema{}
	err := Validate(s, map[string]any{"b": 1, "a": 2, "c": 3})
	require.Error(t, err)

	errs := ValidationErrors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), `"a"`)
	assert.Contains(t, errs[1].Error(), `"b"`)
	assert.Contains(t, errs[2].Error(), `"c"`)
}

func TestNumberAcceptsIntegers(t *testing.T) {
	assert.NoError(t, Number().Validate(48))
	assert.NoError(t, Number().Validate(48.5))
	assert.Error(t, Number().Validate("48"))
	assert.Error(t, Number().Validate(true))
}

func TestEnum(t *testing.T) {
	e := Enum("left", "center", "right")
	assert.NoError(t, e.Validate("center"))
	assert.Error(t, e.Validate("justify"))
	assert.Error(t, e.Validate(1))
}

func TestIsHexColor(t *testing.T) {
	valid := []string{"#fff", "#FFFFFF", "#3366ff", "#3366ff80"}
	for _, s := range valid {
		assert.True(t, IsHexColor(s), s)
	}

	invalid := []string{"", "fff", "#ff", "#ffff", "#gggggg", "#3366ff8"}
	for _, s := range invalid {
		assert.False(t, IsHexColor(s), s)
	}
}
