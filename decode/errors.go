package decode

import "errors"

var ErrEmptyBuffer = errors.New("decoder: empty frame buffer")
