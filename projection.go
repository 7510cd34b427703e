package glm

import (
	"math"
)

// Perspective returns a right handed projection mapping the view
// frustum to clip space with depth in [-1, 1]. fovy is in radians and
// aspect is width over height.
func Perspective[T Float](fovy, aspect, near, far T) Mat4[T] {
	halfFovCot := 1 / T(math.Tan(float64(fovy/2)))
	return Mat4[T]{
		halfFovCot / aspect, 0, 0, 0,
		0, halfFovCot, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}

func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	return Mat4[T]{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
