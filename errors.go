package glm

import (
	"errors"
)

// ErrShape is returned when dynamically sized input does not have the
// dimensions of the target vector or matrix.
var ErrShape = errors.New("glm: shape mismatch")
