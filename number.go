package glm

// Number is the component type of vectors and matrices.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float restricts components to floating point, for operations
// involving trigonometry or division.
type Float interface {
	~float32 | ~float64
}
