// Package glbuf lays matrices out for GL uniform uploads.
//
// GL expects uniform matrices in column major order, which is the glm
// storage order. WebGL 1 rejects transpose=true in uniformMatrix*fv, so
// the transpose flag here re-lays-out the components on the CPU instead.
package glbuf

import (
	"errors"
	"unsafe"

	"github.com/ekdennisek/glm"
	"github.com/ekdennisek/glm/gtx"
)

// ErrSize is returned for buffers that do not hold a 2x2, 3x3 or 4x4
// matrix.
var ErrSize = errors.New("glbuf: not a square matrix buffer")

// Size returns N for a buffer holding an N×N matrix.
func Size(b Float32Buffer) (int, error) {
	switch len(b) {
	case 4:
		return 2, nil
	case 9:
		return 3, nil
	case 16:
		return 4, nil
	}
	return 0, ErrSize
}

type Float32Buffer []float32

// Bytes shares memory with b.
func (b Float32Buffer) Bytes() []byte {
	return float32SliceAsByteSlice([]float32(b))
}

func float32SliceAsByteSlice(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&floats[0])), 4*len(floats))
}

func Mat2(m glm.Mat2[float32], transpose bool) Float32Buffer {
	if transpose {
		m = gtx.RowMajor2FromMat(m)
	}
	return Float32Buffer(m[:])
}

func Mat3(m glm.Mat3[float32], transpose bool) Float32Buffer {
	if transpose {
		m = gtx.RowMajor3FromMat(m)
	}
	return Float32Buffer(m[:])
}

func Mat4(m glm.Mat4[float32], transpose bool) Float32Buffer {
	if transpose {
		m = gtx.RowMajor4FromMat(m)
	}
	return Float32Buffer(m[:])
}

// Concat packs several buffers into one, e.g. for a uniform array.
func Concat(bufs ...Float32Buffer) Float32Buffer {
	var n int
	for _, b := range bufs {
		n += len(b)
	}
	out := make(Float32Buffer, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}
