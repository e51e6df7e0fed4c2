package domain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tarun4279/av-board-api/internal/entities"
	"github.com/tarun4279/av-board-api/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User, tags []string) (*entities.User, error) {
	args := m.Called(ctx, user, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, userID string, patch entities.UserPatch) (*entities.User, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *repoMock) AddUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error) {
	args := m.Called(ctx, userID, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) RemoveUserTags(ctx context.Context, userID string, tags []string) (*entities.User, error) {
	args := m.Called(ctx, userID, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListTags(ctx context.Context) ([]entities.TagStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TagStat), args.Error(1)
}

func (m *repoMock) CreateBusySlot(ctx context.Context, slot entities.BusySlot) (*entities.BusySlot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusySlot), args.Error(1)
}

func (m *repoMock) DeleteBusySlot(ctx context.Context, userID, slotID string) error {
	args := m.Called(ctx, userID, slotID)
	return args.Error(0)
}

func (m *repoMock) ListUsersByTags(ctx context.Context, requiredTags []string) ([]entities.User, error) {
	args := m.Called(ctx, requiredTags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) Stats(ctx context.Context) (entities.DirectoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.DirectoryStats{}, args.Error(1)
	}
	return args.Get(0).(entities.DirectoryStats), args.Error(1)
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func TestUsecase_CreateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.CreateUser(context.Background(), entities.NewUser{Email: "a@b.dev"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateUser(context.Background(), entities.NewUser{Name: "Alice"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateUser(context.Background(), entities.NewUser{Name: "Alice", Email: "not-an-email"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := &entities.User{Name: "Alice", Email: "alice@example.com"}
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return strings.HasPrefix(u.ID, "usr-") && u.Email == "alice@example.com"
	}), []string{"backend", "go"}).Return(expected, nil)

	usr, err := uc.CreateUser(context.Background(), entities.NewUser{
		Name:  "Alice",
		Email: "alice@example.com",
		Tags:  []string{" backend , go ", "backend"},
	})
	require.NoError(t, err)
	require.Equal(t, expected, usr)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.UpdateUser(context.Background(), "usr-1", entities.UserPatch{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	bad := "nope"
	_, err = uc.UpdateUser(context.Background(), "usr-1", entities.UserPatch{Email: &bad})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserNormalizesTags(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	expected := &entities.User{ID: "usr-1"}
	repo.On("UpdateUser", mock.Anything, "usr-1", mock.MatchedBy(func(p entities.UserPatch) bool {
		return p.Tags != nil && len(*p.Tags) == 2 && (*p.Tags)[0] == "backend" && (*p.Tags)[1] == "go"
	})).Return(expected, nil)

	raw := []string{"backend, go", "backend"}
	usr, err := uc.UpdateUser(context.Background(), "usr-1", entities.UserPatch{Tags: &raw})
	require.NoError(t, err)
	require.Equal(t, expected, usr)
	repo.AssertExpectations(t)
}

func TestUsecase_AddTagsValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.AddTags(context.Background(), "", []string{"backend"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddTags(context.Background(), "usr-1", []string{" ", ","})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "AddUserTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_MarkBusyValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.MarkBusy(context.Background(), "usr-1", "not-a-date", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.MarkBusy(context.Background(), "usr-1", "2026-02-06T12:00:00Z", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.MarkBusy(context.Background(), "usr-1", "2026-02-06T13:00:00Z", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateBusySlot", mock.Anything, mock.Anything)
}

func TestUsecase_MarkBusyDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("CreateBusySlot", mock.Anything, mock.MatchedBy(func(s entities.BusySlot) bool {
		return strings.HasPrefix(s.ID, "slot-") && s.UserID == "usr-1" && s.From.Before(s.To)
	})).Return(&entities.BusySlot{ID: "slot-x", UserID: "usr-1"}, nil)

	slot, err := uc.MarkBusy(context.Background(), "usr-1", "2026-02-06T11:00:00Z", "2026-02-06T12:30:00Z", nil)
	require.NoError(t, err)
	require.Equal(t, "usr-1", slot.UserID)
	repo.AssertExpectations(t)
}

func TestUsecase_FreeUsersValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.FreeUsers(context.Background(), "not-a-date", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.FreeUsers(context.Background(), "2026-02-06T12:00:00Z", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.FreeUsers(context.Background(), "", "2026-02-06T12:00:00Z", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "ListUsersByTags", mock.Anything, mock.Anything)
}

func busyAt(t *testing.T, from, to string) entities.BusySlot {
	t.Helper()
	f, err := time.Parse(time.RFC3339, from)
	require.NoError(t, err)
	tt, err := time.Parse(time.RFC3339, to)
	require.NoError(t, err)
	return entities.BusySlot{From: f, To: tt}
}

func TestUsecase_FreeUsersScenario(t *testing.T) {
	u1 := entities.User{ID: "u1", Tags: []string{"backend"},
		BusySlots: []entities.BusySlot{busyAt(t, "2026-02-06T11:00:00Z", "2026-02-06T12:30:00Z")}}
	u2 := entities.User{ID: "u2", Tags: []string{"frontend"},
		BusySlots: []entities.BusySlot{busyAt(t, "2026-02-06T11:15:00Z", "2026-02-06T11:45:00Z")}}
	u3 := entities.User{ID: "u3", Tags: []string{"backend"},
		BusySlots: []entities.BusySlot{busyAt(t, "2026-02-06T12:00:00Z", "2026-02-06T13:00:00Z")}}

	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("ListUsersByTags", mock.Anything, []string{"backend"}).Return([]entities.User{u1, u3}, nil)
	repo.On("ListUsersByTags", mock.Anything, []string{"frontend"}).Return([]entities.User{u2}, nil)

	free, err := uc.FreeUsers(context.Background(), "2026-02-06T11:00:00Z", "2026-02-06T12:00:00Z", []string{"backend"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	require.Equal(t, "u3", free[0].ID)

	free, err = uc.FreeUsers(context.Background(), "2026-02-06T12:30:00Z", "2026-02-06T13:00:00Z", []string{"backend"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	require.Equal(t, "u1", free[0].ID)

	free, err = uc.FreeUsers(context.Background(), "2026-02-06T11:00:00Z", "2026-02-06T12:00:00Z", []string{"frontend"})
	require.NoError(t, err)
	require.Empty(t, free)

	free, err = uc.FreeUsers(context.Background(), "2026-02-06T11:45:00Z", "2026-02-06T12:30:00Z", []string{"frontend"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	require.Equal(t, "u2", free[0].ID)
}

func TestUsecase_FreeUsersNormalizesRawTags(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("ListUsersByTags", mock.Anything, []string{"backend", "go"}).
		Return([]entities.User{}, nil)

	_, err := uc.FreeUsers(context.Background(),
		"2026-02-06T11:00:00Z", "2026-02-06T12:00:00Z",
		[]string{" backend ,go", "backend", ""})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_RemoveBusySlotValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	err := uc.RemoveBusySlot(context.Background(), "usr-1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "DeleteBusySlot", mock.Anything, mock.Anything, mock.Anything)
}
