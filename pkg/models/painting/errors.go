package painting

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyPainted = errors.New("already painted")
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrInvalidSize    = errors.New("invalid surface size")
)

type AlreadyPaintedError struct {
	X, Y int
}

func (e *AlreadyPaintedError) Error() string {
	return fmt.Sprintf("%s at (%d, %d)", ErrAlreadyPainted, e.X, e.Y)
}

func (e *AlreadyPaintedError) Is(target error) bool {
	return target == ErrAlreadyPainted
}

type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s at (%d, %d)", ErrOutOfBounds, e.X, e.Y)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
