// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/tarun4279/av-board-api/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the directory and availability endpoints over the
// usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
