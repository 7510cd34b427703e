package glm

// Mat2 is a 2x2 matrix in column major order.
//
// m[2*c + r] is the element in the r'th row and c'th column.
type Mat2[T Number] [4]T

// NewMat2 builds a matrix from its columns.
func NewMat2[T Number](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{
		c0[0], c0[1],
		c1[0], c1[1],
	}
}

func Ident2[T Number]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

func (Mat2[T]) Size() int { return 2 }

func (m Mat2[T]) At(r, c int) T {
	return m[2*c+r]
}

func (m Mat2[T]) Col(c int) Vec2[T] {
	return Vec2[T]{m[2*c], m[2*c+1]}
}

func (m Mat2[T]) Row(r int) Vec2[T] {
	return Vec2[T]{m[r], m[2+r]}
}

func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{
		m[0], m[2],
		m[1], m[3],
	}
}

func (m Mat2[T]) Add(a Mat2[T]) Mat2[T] {
	var out Mat2[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat2[T]) Mul(a Mat2[T]) Mat2[T] {
	var out Mat2[T]
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum T
			for k := 0; k < 2; k++ {
				sum += m[2*k+i] * a[2*j+k]
			}
			out[2*j+i] = sum
		}
	}
	return out
}

func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0]*v[0] + m[2]*v[1],
		m[1]*v[0] + m[3]*v[1],
	}
}
