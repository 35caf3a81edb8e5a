package trail

import "errors"

var (
	ErrNoRenderer        = errors.New("trail: no renderer defined")
	ErrNoDecoder         = errors.New("trail: no decoder defined")
	ErrNoCompositor      = errors.New("trail: no compositor defined")
	ErrInvalidIterations = errors.New("trail: iteration count must be greater than zero")
	ErrAlreadyStarted    = errors.New("trail: loop already started")
)
