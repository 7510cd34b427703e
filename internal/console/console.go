// Package console interprets one-line matrix layout commands such as
//
//	row_major 1 2 3 4
//
// The matrix size is inferred from the number of arguments: 4, 9 or 16
// components for 2x2, 3x3 or 4x4.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ekdennisek/glm"
	"github.com/ekdennisek/glm/gtx"
)

var (
	ErrArgumentNumber = errors.New("invalid number of arguments")
	ErrInvalidCommand = errors.New("invalid command")
)

// builders holds one function per matrix size for a command.
type builders struct {
	mat2 func(a []float64) glm.Mat2[float64]
	mat3 func(a []float64) glm.Mat3[float64]
	mat4 func(a []float64) glm.Mat4[float64]
}

func vec2(a []float64) glm.Vec2[float64] { return glm.Vec2[float64](a[:2]) }
func vec3(a []float64) glm.Vec3[float64] { return glm.Vec3[float64](a[:3]) }
func vec4(a []float64) glm.Vec4[float64] { return glm.Vec4[float64](a[:4]) }

func mat2(a []float64) glm.Mat2[float64] { return glm.Mat2[float64](a[:4]) }
func mat3(a []float64) glm.Mat3[float64] { return glm.Mat3[float64](a[:9]) }
func mat4(a []float64) glm.Mat4[float64] { return glm.Mat4[float64](a[:16]) }

var commands = map[string]builders{
	"row_major": {
		mat2: func(a []float64) glm.Mat2[float64] {
			return gtx.RowMajor2(vec2(a), vec2(a[2:]))
		},
		mat3: func(a []float64) glm.Mat3[float64] {
			return gtx.RowMajor3(vec3(a), vec3(a[3:]), vec3(a[6:]))
		},
		mat4: func(a []float64) glm.Mat4[float64] {
			return gtx.RowMajor4(vec4(a), vec4(a[4:]), vec4(a[8:]), vec4(a[12:]))
		},
	},
	"col_major": {
		mat2: func(a []float64) glm.Mat2[float64] {
			return gtx.ColMajor2(vec2(a), vec2(a[2:]))
		},
		mat3: func(a []float64) glm.Mat3[float64] {
			return gtx.ColMajor3(vec3(a), vec3(a[3:]), vec3(a[6:]))
		},
		mat4: func(a []float64) glm.Mat4[float64] {
			return gtx.ColMajor4(vec4(a), vec4(a[4:]), vec4(a[8:]), vec4(a[12:]))
		},
	},
	"row_major_mat": {
		mat2: func(a []float64) glm.Mat2[float64] { return gtx.RowMajor2FromMat(mat2(a)) },
		mat3: func(a []float64) glm.Mat3[float64] { return gtx.RowMajor3FromMat(mat3(a)) },
		mat4: func(a []float64) glm.Mat4[float64] { return gtx.RowMajor4FromMat(mat4(a)) },
	},
	"col_major_mat": {
		mat2: func(a []float64) glm.Mat2[float64] { return gtx.ColMajor2FromMat(mat2(a)) },
		mat3: func(a []float64) glm.Mat3[float64] { return gtx.ColMajor3FromMat(mat3(a)) },
		mat4: func(a []float64) glm.Mat4[float64] { return gtx.ColMajor4FromMat(mat4(a)) },
	},
	"transpose": {
		mat2: func(a []float64) glm.Mat2[float64] { return mat2(a).Transpose() },
		mat3: func(a []float64) glm.Mat3[float64] { return mat3(a).Transpose() },
		mat4: func(a []float64) glm.Mat4[float64] { return mat4(a).Transpose() },
	},
}

// Commands returns the command names in alphabetical order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result of a command. Matrix is nil for blank and comment lines.
type Result struct {
	Command string
	Matrix  glm.Matrix[float64]
}

// Text formats the matrix row by row with prec digits after the point.
func (r Result) Text(prec int) string {
	if r.Matrix == nil {
		return ""
	}
	var resStr []string
	for _, row := range glm.Rows(r.Matrix) {
		var resLine []string
		for _, v := range row {
			resLine = append(resLine, strconv.FormatFloat(v, 'f', prec, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n")
}

type Console struct{}

func New() *Console {
	return &Console{}
}

func (c *Console) Run(line string) (Result, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return Result{}, nil
	}
	b, ok := commands[args[0]]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidCommand, args[0])
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Result{}, err
		}
		argsFloat = append(argsFloat, f)
	}

	res := Result{Command: args[0]}
	switch len(argsFloat) {
	case 4:
		res.Matrix = b.mat2(argsFloat)
	case 9:
		res.Matrix = b.mat3(argsFloat)
	case 16:
		res.Matrix = b.mat4(argsFloat)
	default:
		return Result{}, fmt.Errorf("%w: %s takes 4, 9 or 16 components, got %d",
			ErrArgumentNumber, args[0], len(argsFloat),
		)
	}
	return res, nil
}
