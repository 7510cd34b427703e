package glm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vectors encode as flow sequences of their components. Matrices encode
// as a sequence of rows, so the text reads the way the matrix is written
// on paper regardless of the column major storage.

func flowNode(v interface{}) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

func rowsNode[T Number](m Matrix[T]) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range Rows(m) {
		rn, err := flowNode(row)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, rn)
	}
	return n, nil
}

func decodeVec[T Number](value *yaml.Node, out []T) error {
	var v []T
	if err := value.Decode(&v); err != nil {
		return err
	}
	if len(v) != len(out) {
		return fmt.Errorf("%w: line %d: %d components, expected %d",
			ErrShape, value.Line, len(v), len(out),
		)
	}
	copy(out, v)
	return nil
}

func decodeRows[T Number](value *yaml.Node, out []T, n int) error {
	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return err
	}
	if len(rows) != n {
		return fmt.Errorf("%w: line %d: %d rows, expected %d",
			ErrShape, value.Line, len(rows), n,
		)
	}
	for r, row := range rows {
		if len(row) != n {
			return fmt.Errorf("%w: line %d: row %d has %d columns, expected %d",
				ErrShape, value.Line, r, len(row), n,
			)
		}
		for c, v := range row {
			out[n*c+r] = v
		}
	}
	return nil
}

func (v Vec2[T]) MarshalYAML() (interface{}, error) { return flowNode(v[:]) }
func (v Vec3[T]) MarshalYAML() (interface{}, error) { return flowNode(v[:]) }
func (v Vec4[T]) MarshalYAML() (interface{}, error) { return flowNode(v[:]) }

func (v *Vec2[T]) UnmarshalYAML(value *yaml.Node) error { return decodeVec(value, (*v)[:]) }
func (v *Vec3[T]) UnmarshalYAML(value *yaml.Node) error { return decodeVec(value, (*v)[:]) }
func (v *Vec4[T]) UnmarshalYAML(value *yaml.Node) error { return decodeVec(value, (*v)[:]) }

func (m Mat2[T]) MarshalYAML() (interface{}, error) { return rowsNode[T](m) }
func (m Mat3[T]) MarshalYAML() (interface{}, error) { return rowsNode[T](m) }
func (m Mat4[T]) MarshalYAML() (interface{}, error) { return rowsNode[T](m) }

// UnmarshalYAML leaves m unchanged on error.
func (m *Mat2[T]) UnmarshalYAML(value *yaml.Node) error {
	var out Mat2[T]
	if err := decodeRows(value, out[:], 2); err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalYAML leaves m unchanged on error.
func (m *Mat3[T]) UnmarshalYAML(value *yaml.Node) error {
	var out Mat3[T]
	if err := decodeRows(value, out[:], 3); err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalYAML leaves m unchanged on error.
func (m *Mat4[T]) UnmarshalYAML(value *yaml.Node) error {
	var out Mat4[T]
	if err := decodeRows(value, out[:], 4); err != nil {
		return err
	}
	*m = out
	return nil
}
