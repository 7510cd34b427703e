// Package pcgolmat converts between glm values and the float32 types of
// github.com/seqsense/pcgol/mat.
//
// Both libraries store Mat4 in column major order, so the conversions
// copy components without re-ordering them. Use gtx.RowMajor4 to build
// a pcgol transform from rows.
package pcgolmat

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/ekdennisek/glm"
)

func FromMat4(m mat.Mat4) glm.Mat4[float32] {
	return glm.Mat4[float32](m)
}

func ToMat4(m glm.Mat4[float32]) mat.Mat4 {
	return mat.Mat4(m)
}

func FromVec3(v mat.Vec3) glm.Vec3[float32] {
	return glm.Vec3[float32](v)
}

func ToVec3(v glm.Vec3[float32]) mat.Vec3 {
	return mat.Vec3(v)
}

// ToVec3s converts a point list, e.g. for pcgol point cloud iterators.
func ToVec3s(vs []glm.Vec3[float32]) []mat.Vec3 {
	out := make([]mat.Vec3, len(vs))
	for i, v := range vs {
		out[i] = mat.Vec3(v)
	}
	return out
}
