/*
Package domain contains the core data model for easel animation projects.

It defines the fundamental entities of the document, such as the Project,
its Layers, and the Keyframes that animate layer properties. This package is
kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Project: The serializable document — canvas, timing, and an ordered layer stack.
  - Layer: A positioned, styled visual element of a fixed kind, owning its own timeline.
  - Keyframe: A (time, property, value, interpolation) control point on a layer's timeline.
  - Interpolation: The family (continuous, text, step) and strategy applied between keyframes.

Every mutation applied by pkg/ops leaves the invariants of this package
intact: layer ids are unique and never reused, keyframes stay sorted by
ascending time, and no two keyframes share a time for the same property.
*/
package domain
