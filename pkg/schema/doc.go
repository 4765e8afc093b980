/*
Package schema validates layer property maps ("props") against the shape
registered for each layer type.

Every layer type has a Definition: a Schema mapping prop names to Types,
plus the default values merged under caller overrides at creation time.
Mutations that touch props validate the result here before committing, so
an invalid patch can never land in the document.

# Types

Built-in type validators cover the value kinds a property can hold:

  - Number: floats (and JSON-decoded ints)
  - String: free-form text
  - Bool: flags
  - Color: hex color strings (#rgb, #rrggbb, #rrggbbaa)
  - Enum: one of a fixed set of strings

Validation failures are reported as *ValidationError (single field) or
*AggregateError (multiple fields), never as panics.
*/
package schema
