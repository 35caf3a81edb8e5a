package renderer

import "errors"

var (
	ErrNoTracers         = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidFrameSize  = errors.New("renderer: frame width and height must be greater than zero")
	ErrUnknownEncoding   = errors.New("renderer: unknown frame encoding")
	ErrNoPlaybackFrames  = errors.New("renderer: no frames to play back")
	ErrPlaybackExhausted = errors.New("renderer: no more frames to play back")
)
