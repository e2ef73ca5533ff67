package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/logic"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// ErrorHandler turns logic errors into a status code and body. It is
// installed with httpx.SetErrorHandlerCtx.
func ErrorHandler(_ context.Context, err error) (int, any) {
	code, status := "internal", http.StatusInternalServerError

	switch {
	case errors.Is(err, painting.ErrAlreadyPainted):
		code, status = "already_painted", http.StatusConflict
	case errors.Is(err, painting.ErrOutOfBounds):
		code, status = "out_of_bounds", http.StatusUnprocessableEntity
	case errors.Is(err, svc.ErrPaintingNotFound):
		code, status = "not_found", http.StatusNotFound
	case errors.Is(err, painting.ErrUnknownKind),
		errors.Is(err, painting.ErrInvalidSize),
		errors.Is(err, logic.ErrInvalidPaintingUid),
		errors.Is(err, logic.ErrSurfaceTooLarge),
		errors.Is(err, ErrBadRequest):
		code, status = "bad_request", http.StatusBadRequest
	}

	return status, &types.ErrorResponse{Code: code, Message: err.Error()}
}
