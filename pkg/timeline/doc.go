/*
Package timeline computes the value of a layer property at an arbitrary
time by interpolating between keyframes.

The evaluator is pure: it reads the sorted keyframe list maintained by
pkg/ops and never mutates the document. It is used both for live preview
feedback during an authoring session and for frame-accurate sampling by a
rendering pipeline.

# Semantics

  - Zero keyframes: the layer's static value for the property.
  - Before the first keyframe: the first keyframe's value (clamp).
  - After the last keyframe: the last keyframe's value (clamp).
  - Between a bracketing pair (k0, k1): normalized progress p is eased by
    the pair's strategy and applied per family — continuous values blend
    numerically (colors per channel), text values reveal progressively,
    step values hold k0 until k1's time.
*/
package timeline
