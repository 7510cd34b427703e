// Package glm implements small fixed-size vector and matrix value types
// in the OpenGL Mathematics manner.
//
// Matrices are stored in column major order: for an N×N matrix m,
// m[N*c + r] is the element in the r'th row and c'th column. Every
// function that talks about "storage order" refers to this layout.
// Builders that assemble matrices in an explicit major order live in
// the gtx subpackage.
package glm
