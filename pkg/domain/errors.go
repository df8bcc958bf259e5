package domain

import "errors"

// ErrUnknownTopic is returned when a topic ID does not match any registered dashboard.
var ErrUnknownTopic = errors.New("unknown topic")

// ErrFrameOutOfRange is returned when a frame index falls outside [0, frames).
var ErrFrameOutOfRange = errors.New("frame index out of range")

// ErrInvalidConfig is returned when configuration values cannot drive a run.
var ErrInvalidConfig = errors.New("invalid configuration")
