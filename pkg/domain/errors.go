package domain

import "errors"

// ErrProjectNotFound is returned when a project id cannot be found in the store.
var ErrProjectNotFound = errors.New("project not found")

// ErrLayerNotFound is returned when a layer reference cannot be resolved.
var ErrLayerNotFound = errors.New("layer not found")

// ErrKeyframeNotFound is returned when a keyframe id is unknown to a layer.
var ErrKeyframeNotFound = errors.New("keyframe not found")

// ErrNotAGroup is returned when a group operation targets a non-group layer.
var ErrNotAGroup = errors.New("layer is not a group")
