// Package gtx builds matrices with an explicit major order, row or
// column.
//
// glm matrices are stored in column major order. The RowMajor builders
// take rows and the ColMajor builders take columns; the FromMat variants
// re-lay-out an existing matrix. RowMajorNFromMat returns the matrix
// whose rows are the columns of m, and ColMajorNFromMat returns m as is,
// since it already is in the default order.
//
// None of the functions validate components: NaN and infinities are
// copied through.
package gtx

import (
	"github.com/ekdennisek/glm"
)

// RowMajor2 builds a matrix from row vectors.
func RowMajor2[T glm.Number](v1, v2 glm.Vec2[T]) glm.Mat2[T] {
	return glm.Mat2[T]{
		v1[0], v2[0],
		v1[1], v2[1],
	}
}

// RowMajor2FromMat builds a row major matrix from m.
func RowMajor2FromMat[T glm.Number](m glm.Mat2[T]) glm.Mat2[T] {
	return RowMajor2(m.Col(0), m.Col(1))
}

// RowMajor3 builds a matrix from row vectors.
func RowMajor3[T glm.Number](v1, v2, v3 glm.Vec3[T]) glm.Mat3[T] {
	return glm.Mat3[T]{
		v1[0], v2[0], v3[0],
		v1[1], v2[1], v3[1],
		v1[2], v2[2], v3[2],
	}
}

// RowMajor3FromMat builds a row major matrix from m.
func RowMajor3FromMat[T glm.Number](m glm.Mat3[T]) glm.Mat3[T] {
	return RowMajor3(m.Col(0), m.Col(1), m.Col(2))
}

// RowMajor4 builds a matrix from row vectors.
func RowMajor4[T glm.Number](v1, v2, v3, v4 glm.Vec4[T]) glm.Mat4[T] {
	return glm.Mat4[T]{
		v1[0], v2[0], v3[0], v4[0],
		v1[1], v2[1], v3[1], v4[1],
		v1[2], v2[2], v3[2], v4[2],
		v1[3], v2[3], v3[3], v4[3],
	}
}

// RowMajor4FromMat builds a row major matrix from m.
func RowMajor4FromMat[T glm.Number](m glm.Mat4[T]) glm.Mat4[T] {
	return RowMajor4(m.Col(0), m.Col(1), m.Col(2), m.Col(3))
}

// ColMajor2 builds a matrix from column vectors.
func ColMajor2[T glm.Number](v1, v2 glm.Vec2[T]) glm.Mat2[T] {
	return glm.NewMat2(v1, v2)
}

// ColMajor2FromMat builds a column major matrix from m.
func ColMajor2FromMat[T glm.Number](m glm.Mat2[T]) glm.Mat2[T] {
	return m
}

// ColMajor3 builds a matrix from column vectors.
func ColMajor3[T glm.Number](v1, v2, v3 glm.Vec3[T]) glm.Mat3[T] {
	return glm.NewMat3(v1, v2, v3)
}

// ColMajor3FromMat builds a column major matrix from m.
func ColMajor3FromMat[T glm.Number](m glm.Mat3[T]) glm.Mat3[T] {
	return m
}

// ColMajor4 builds a matrix from column vectors.
func ColMajor4[T glm.Number](v1, v2, v3, v4 glm.Vec4[T]) glm.Mat4[T] {
	return glm.NewMat4(v1, v2, v3, v4)
}

// ColMajor4FromMat builds a column major matrix from m.
func ColMajor4FromMat[T glm.Number](m glm.Mat4[T]) glm.Mat4[T] {
	return m
}
