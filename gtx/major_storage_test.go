package gtx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekdennisek/glm"
)

func TestRowMajor(t *testing.T) {
	t.Run("2", func(t *testing.T) {
		v1, v2 := glm.NewVec2(1, 2), glm.NewVec2(3, 4)
		m := RowMajor2(v1, v2)
		assert.Equal(t, v1, m.Row(0))
		assert.Equal(t, v2, m.Row(1))
		assert.Equal(t, glm.Mat2[int]{1, 3, 2, 4}, m)
	})
	t.Run("3", func(t *testing.T) {
		v1 := glm.NewVec3[float32](1, 2, 3)
		v2 := glm.NewVec3[float32](4, 5, 6)
		v3 := glm.NewVec3[float32](7, 8, 9)
		m := RowMajor3(v1, v2, v3)
		assert.Equal(t, v1, m.Row(0))
		assert.Equal(t, v2, m.Row(1))
		assert.Equal(t, v3, m.Row(2))
	})
	t.Run("4", func(t *testing.T) {
		v1 := glm.NewVec4[int64](1, 2, 3, 4)
		v2 := glm.NewVec4[int64](5, 6, 7, 8)
		v3 := glm.NewVec4[int64](9, 10, 11, 12)
		v4 := glm.NewVec4[int64](13, 14, 15, 16)
		m := RowMajor4(v1, v2, v3, v4)
		for i, v := range []glm.Vec4[int64]{v1, v2, v3, v4} {
			assert.Equalf(t, v, m.Row(i), "row %d", i)
		}
		assert.Equal(t, int64(7), m.At(1, 2))
	})
}

func TestColMajor(t *testing.T) {
	t.Run("2", func(t *testing.T) {
		v1, v2 := glm.NewVec2(1, 2), glm.NewVec2(3, 4)
		m := ColMajor2(v1, v2)
		assert.Equal(t, v1, m.Col(0))
		assert.Equal(t, v2, m.Col(1))
		assert.Equal(t, RowMajor2(v1, v2).Transpose(), m)
	})
	t.Run("3", func(t *testing.T) {
		v1 := glm.NewVec3[float64](1.5, 2, 3)
		v2 := glm.NewVec3[float64](4.5, 5, 6)
		v3 := glm.NewVec3[float64](7.5, 8, 9)
		m := ColMajor3(v1, v2, v3)
		assert.Equal(t, v1, m.Col(0))
		assert.Equal(t, v2, m.Col(1))
		assert.Equal(t, v3, m.Col(2))
		assert.Equal(t, RowMajor3(v1, v2, v3).Transpose(), m)
	})
	t.Run("4", func(t *testing.T) {
		v1 := glm.NewVec4[uint16](1, 2, 3, 4)
		v2 := glm.NewVec4[uint16](5, 6, 7, 8)
		v3 := glm.NewVec4[uint16](9, 10, 11, 12)
		v4 := glm.NewVec4[uint16](13, 14, 15, 16)
		m := ColMajor4(v1, v2, v3, v4)
		for i, v := range []glm.Vec4[uint16]{v1, v2, v3, v4} {
			assert.Equalf(t, v, m.Col(i), "col %d", i)
		}
		assert.Equal(t, glm.Mat4[uint16]{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, m)
	})
}

func TestFromMat(t *testing.T) {
	m2 := glm.Mat2[float64]{1, 2, 3, 4}
	m3 := glm.Mat3[float64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m4 := glm.Mat4[float64]{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	t.Run("RowsAreInputColumns", func(t *testing.T) {
		r2 := RowMajor2FromMat(m2)
		for i := 0; i < 2; i++ {
			assert.Equal(t, m2.Col(i), r2.Row(i))
		}
		r3 := RowMajor3FromMat(m3)
		for i := 0; i < 3; i++ {
			assert.Equal(t, m3.Col(i), r3.Row(i))
		}
		r4 := RowMajor4FromMat(m4)
		for i := 0; i < 4; i++ {
			assert.Equal(t, m4.Col(i), r4.Row(i))
			assert.Equal(t, m4.Row(i), r4.Col(i))
		}
		assert.Equal(t, m4.Transpose(), r4)
	})
	t.Run("RowMajorTwiceIsIdentity", func(t *testing.T) {
		assert.Equal(t, m2, RowMajor2FromMat(RowMajor2FromMat(m2)))
		assert.Equal(t, m3, RowMajor3FromMat(RowMajor3FromMat(m3)))
		assert.Equal(t, m4, RowMajor4FromMat(RowMajor4FromMat(m4)))
	})
	t.Run("ColMajorIsIdempotent", func(t *testing.T) {
		assert.Equal(t, m2, ColMajor2FromMat(m2))
		assert.Equal(t, m3, ColMajor3FromMat(ColMajor3FromMat(m3)))
		assert.Equal(t, m4, ColMajor4FromMat(m4))
	})
	t.Run("RoundTrip", func(t *testing.T) {
		r := RowMajor4FromMat(ColMajor4FromMat(m4))
		for i := 0; i < 4; i++ {
			assert.Equal(t, m4.Col(i), r.Row(i))
		}
		assert.Equal(t, m4, RowMajor4FromMat(ColMajor4FromMat(r)))
	})
	t.Run("VectorsAgree", func(t *testing.T) {
		assert.Equal(t, RowMajor3FromMat(m3), RowMajor3(m3.Col(0), m3.Col(1), m3.Col(2)))
		assert.Equal(t, ColMajor3FromMat(m3), ColMajor3(m3.Col(0), m3.Col(1), m3.Col(2)))
		assert.Equal(t, RowMajor2FromMat(m2), ColMajor2(m2.Row(0), m2.Row(1)))
	})
}

func TestNonFinitePassThrough(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	m := RowMajor2(glm.NewVec2(nan, 1), glm.NewVec2(inf, -inf))
	require.True(t, math.IsNaN(m.At(0, 0)))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.True(t, math.IsInf(m.At(1, 0), 1))
	assert.True(t, math.IsInf(m.At(1, 1), -1))

	c := ColMajor4FromMat(RowMajor4FromMat(glm.Mat4[float64]{0: nan, 5: inf}))
	assert.True(t, math.IsNaN(c[0]))
	assert.True(t, math.IsInf(c[5], 1))
}
