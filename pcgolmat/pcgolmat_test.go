package pcgolmat

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"

	"github.com/ekdennisek/glm"
	"github.com/ekdennisek/glm/gtx"
)

func TestRoundTrip(t *testing.T) {
	m := mat.Translate(1, 2, 3)
	assert.Equal(t, m, ToMat4(FromMat4(m)))

	v := mat.NewVec3(4, 5, 6)
	assert.Equal(t, v, ToVec3(FromVec3(v)))
}

func TestTranslateAgrees(t *testing.T) {
	assert.Equal(t, glm.Translate[float32](1, 2, 3), FromMat4(mat.Translate(1, 2, 3)))
}

func TestRowMajorTransform(t *testing.T) {
	// Rotation by 90 degrees around z followed by a translation,
	// written the way it reads on paper.
	m := gtx.RowMajor4(
		glm.NewVec4[float32](0, -1, 0, 10),
		glm.NewVec4[float32](1, 0, 0, 20),
		glm.NewVec4[float32](0, 0, 1, 30),
		glm.NewVec4[float32](0, 0, 0, 1),
	)
	points := []glm.Vec3[float32]{
		{1, 0, 0},
		{0, 1, 0},
		{1, 2, 3},
	}
	expected := []mat.Vec3{
		{10, 21, 30},
		{9, 20, 30},
		{8, 21, 33},
	}

	pm := ToMat4(m)
	for i, p := range ToVec3s(points) {
		got := pm.TransformAffine(p)
		assert.Equalf(t, expected[i], got, "point %d", i)
		assert.Equal(t, got, ToVec3(m.TransformAffine(points[i])))
	}
}
