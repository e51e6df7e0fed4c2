package usecase

import (
	"context"
	"time"

	"github.com/tarun4279/av-board-api/internal/repository"
	"github.com/tarun4279/av-board-api/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TagUsecaseInterface
	BusySlotUsecaseInterface
	AvailabilityUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
