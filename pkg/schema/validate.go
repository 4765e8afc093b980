package schema

import "sort"

// Schema is a map of prop names to their expected types.
// Example: {"text": String(), "fontSize": Number(), "color": Color()}
type Schema map[string]Type

// Validate checks that every key in data is defined by the schema and that
// its value conforms to the declared type. Keys absent from data are not an
// error: defaults are merged before validation, and patches are partial.
// Returns an *AggregateError listing every failure found.
func Validate(schema Schema, data map[string]any) error {
	var errs []error

	// Deterministic error ordering for stable messages.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := data[key]
		fieldType, known := schema[key]
		if !known {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: "not defined in schema",
				Value:  value,
			})
			continue
		}
		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
