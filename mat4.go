package glm

// Mat4 is a 4x4 matrix in column major order.
//
// m[4*c + r] is the element in the r'th row and c'th column.
type Mat4[T Number] [16]T

// NewMat4 builds a matrix from its columns.
func NewMat4[T Number](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0[0], c0[1], c0[2], c0[3],
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
		c3[0], c3[1], c3[2], c3[3],
	}
}

func Ident4[T Number]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (Mat4[T]) Size() int { return 4 }

func (m Mat4[T]) At(r, c int) T {
	return m[4*c+r]
}

func (m Mat4[T]) Col(c int) Vec4[T] {
	return Vec4[T]{m[4*c], m[4*c+1], m[4*c+2], m[4*c+3]}
}

func (m Mat4[T]) Row(r int) Vec4[T] {
	return Vec4[T]{m[r], m[4+r], m[8+r], m[12+r]}
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m Mat4[T]) Add(a Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat4[T]) Mul(a Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

// MulAffine multiplies two affine matrices, skipping the constant
// bottom row.
func (m Mat4[T]) MulAffine(a Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			sum := m[4*3+i] * a[4*j+3]
			for k := 0; k < 3; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	out[15] = 1
	return out
}

func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// TransformAffine applies m to the point a, assuming the bottom row of m
// is (0, 0, 0, 1).
func (m Mat4[T]) TransformAffine(a Vec3[T]) Vec3[T] {
	var out Vec3[T]
	out[0] = m[4*0+0]*a[0] + m[4*1+0]*a[1] + m[4*2+0]*a[2] + m[4*3+0]
	out[1] = m[4*0+1]*a[0] + m[4*1+1]*a[1] + m[4*2+1]*a[2] + m[4*3+1]
	out[2] = m[4*0+2]*a[0] + m[4*1+2]*a[1] + m[4*2+2]*a[2] + m[4*3+2]
	return out
}

// Transform applies m to the point a and divides by the resulting w,
// unless w is zero.
func (m Mat4[T]) Transform(a Vec3[T]) Vec3[T] {
	out := m.TransformAffine(a)
	w := m[4*0+3]*a[0] + m[4*1+3]*a[1] + m[4*2+3]*a[2] + m[4*3+3]
	if w == 1 || w == 0 {
		return out
	}
	return Vec3[T]{out[0] / w, out[1] / w, out[2] / w}
}
