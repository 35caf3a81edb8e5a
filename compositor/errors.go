package compositor

import "errors"

var ErrUnknownBlendMode = errors.New("compositor: unknown blend mode")
