package glbuf

import (
	"fmt"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var float32Array = js.Global().Get("Float32Array")

// JS copies b into a new Float32Array.
func (b Float32Buffer) JS() js.Value {
	arr := float32Array.New(len(b))
	for i, v := range b {
		arr.SetIndex(i, v)
	}
	return arr
}

// Uniform uploads a buffer built by Mat2, Mat3 or Mat4 to the matrix
// uniform at loc. The transpose argument of uniformMatrix*fv is always
// false, as WebGL 1 requires.
func Uniform(gl *webgl.WebGL, loc js.Value, b Float32Buffer) error {
	n, err := Size(b)
	if err != nil {
		return err
	}
	gl.JS().Call(fmt.Sprintf("uniformMatrix%dfv", n), loc, false, b.JS())
	return nil
}
