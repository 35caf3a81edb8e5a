package cpu

import "errors"

var (
	ErrNoSceneData      = errors.New("cpu tracer: no scene data attached")
	ErrFrameBufferSize  = errors.New("cpu tracer: frame buffer size does not match frame dimensions")
	ErrBlockOutOfBounds = errors.New("cpu tracer: block exceeds frame height")
)
