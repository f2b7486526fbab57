package geometry

import "fmt"

// ErrDimensionMismatch indicates that run-time data does not have the
// number of components the target vector type requires.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func fromSlice[T Scalar](dst, src []T) error {
	if len(src) != len(dst) {
		return &ErrDimensionMismatch{Expected: len(dst), Actual: len(src)}
	}

	copy(dst, src)

	return nil
}
