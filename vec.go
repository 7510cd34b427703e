package glm

import (
	"math"
)

type Vec2[T Number] [2]T

type Vec3[T Number] [3]T

type Vec4[T Number] [4]T

func NewVec2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

func NewVec3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func NewVec4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

func (v Vec2[T]) Add(a Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] + a[0], v[1] + a[1]}
}

func (v Vec2[T]) Sub(a Vec2[T]) Vec2[T] {
	return Vec2[T]{v[0] - a[0], v[1] - a[1]}
}

func (v Vec2[T]) Mul(a T) Vec2[T] {
	return Vec2[T]{v[0] * a, v[1] * a}
}

func (v Vec2[T]) Dot(a Vec2[T]) T {
	return v[0]*a[0] + v[1]*a[1]
}

func (v Vec3[T]) NormSq() T {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Norm is computed in float64 regardless of T.
func (v Vec3[T]) Norm() float64 {
	return math.Sqrt(float64(v.NormSq()))
}

func (v Vec3[T]) Mul(a T) Vec3[T] {
	return Vec3[T]{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3[T]) Sub(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3[T]) Add(a Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3[T]) Dot(a Vec3[T]) T {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3[T]) Cross(a Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

// CrossNormSq returns |v × a|² without computing the cross product.
func (v Vec3[T]) CrossNormSq(a Vec3[T]) T {
	d := v.Dot(a)
	return v.NormSq()*a.NormSq() - d*d
}

// Normalize3 returns v scaled to unit length.
// A zero vector yields NaN components.
func Normalize3[T Float](v Vec3[T]) Vec3[T] {
	return v.Mul(T(1 / v.Norm()))
}

func (v Vec4[T]) Add(a Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + a[0], v[1] + a[1], v[2] + a[2], v[3] + a[3]}
}

func (v Vec4[T]) Sub(a Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - a[0], v[1] - a[1], v[2] - a[2], v[3] - a[3]}
}

func (v Vec4[T]) Mul(a T) Vec4[T] {
	return Vec4[T]{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

func (v Vec4[T]) Dot(a Vec4[T]) T {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2] + v[3]*a[3]
}
