package glm

// Matrix is the read access shared by Mat2, Mat3 and Mat4.
type Matrix[T Number] interface {
	// Size returns N for an N×N matrix.
	Size() int
	// At returns the element in row r and column c.
	At(r, c int) T
}

var (
	_ Matrix[float32] = Mat2[float32]{}
	_ Matrix[float32] = Mat3[float32]{}
	_ Matrix[float32] = Mat4[float32]{}
)

// Rows copies m into a slice of rows.
func Rows[T Number](m Matrix[T]) [][]T {
	n := m.Size()
	rows := make([][]T, n)
	for r := range rows {
		rows[r] = make([]T, n)
		for c := range rows[r] {
			rows[r][c] = m.At(r, c)
		}
	}
	return rows
}
