package schema

import (
	"fmt"
	"strings"
)

// Kind classifies the value a prop (or animatable property) can hold.
// The interpolation evaluator uses it to pick the default family.
type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindColor  Kind = "color"
)

// Type defines the contract for prop validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "number", "color").
	Name() string
	// Kind returns the value kind this type accepts.
	Kind() Kind
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// NumberType validates numeric values. Integers are accepted since JSON
// decoding may produce either.
type NumberType struct{}

func (t *NumberType) Name() string { return "number" }
func (t *NumberType) Kind() Kind   { return KindNumber }

func (t *NumberType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }
func (t *StringType) Kind() Kind   { return KindString }

func (t *StringType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }
func (t *BoolType) Kind() Kind   { return KindBool }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// ColorType validates hex color strings: #rgb, #rrggbb or #rrggbbaa.
type ColorType struct{}

func (t *ColorType) Name() string { return "color" }
func (t *ColorType) Kind() Kind   { return KindColor }

func (t *ColorType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected color string, got %T", value)
	}
	if !IsHexColor(s) {
		return fmt.Errorf("expected hex color (#rgb, #rrggbb or #rrggbbaa), got %q", s)
	}
	return nil
}

// EnumType validates membership in a fixed set of strings.
type EnumType struct {
	values []string
}

func (t *EnumType) Name() string { return "enum(" + strings.Join(t.values, "|") + ")" }
func (t *EnumType) Kind() Kind   { return KindString }

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	for _, v := range t.values {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("expected one of %s, got %q", strings.Join(t.values, ", "), s)
}

// IsHexColor reports whether s is a #rgb, #rrggbb or #rrggbbaa color string.
func IsHexColor(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// --- Factory Functions ---

// Number creates a numeric type validator.
func Number() Type { return &NumberType{} }

// String creates a string type validator.
func String() Type { return &StringType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Color creates a hex color type validator.
func Color() Type { return &ColorType{} }

// Enum creates a validator accepting one of the given strings.
func Enum(values ...string) Type { return &EnumType{values: values} }
