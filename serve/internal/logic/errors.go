package logic

import "errors"

var (
	ErrInvalidPaintingUid = errors.New("invalid painting uid")
	ErrSurfaceTooLarge    = errors.New("surface too large")
)
