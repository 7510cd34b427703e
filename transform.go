package glm

import (
	"math"
)

func Translate[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns a rotation of ang radians around the axis (x, y, z),
// which must be normalized.
func Rotate[T Float](x, y, z, ang T) Mat4[T] {
	s := T(math.Sin(float64(ang)))
	c := T(math.Cos(float64(ang)))
	t := 1 - c

	return Mat4[T]{
		c + x*x*t, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}
