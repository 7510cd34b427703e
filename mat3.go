package glm

// Mat3 is a 3x3 matrix in column major order.
//
// m[3*c + r] is the element in the r'th row and c'th column.
type Mat3[T Number] [9]T

// NewMat3 builds a matrix from its columns.
func NewMat3[T Number](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

func Ident3[T Number]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (Mat3[T]) Size() int { return 3 }

func (m Mat3[T]) At(r, c int) T {
	return m[3*c+r]
}

func (m Mat3[T]) Col(c int) Vec3[T] {
	return Vec3[T]{m[3*c], m[3*c+1], m[3*c+2]}
}

func (m Mat3[T]) Row(r int) Vec3[T] {
	return Vec3[T]{m[r], m[3+r], m[6+r]}
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3[T]) Add(a Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat3[T]) Mul(a Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum T
			for k := 0; k < 3; k++ {
				sum += m[3*k+i] * a[3*j+k]
			}
			out[3*j+i] = sum
		}
	}
	return out
}

func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}
