package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidInput
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrSlotNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrEmailTaken):
		status = http.StatusConflict
		code = api.CodeConflict
		msg = "email already in use"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
