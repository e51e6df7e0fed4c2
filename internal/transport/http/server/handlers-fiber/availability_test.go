package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/availability"
	"github.com/tarun4279/av-board-api/internal/entities"
	"github.com/tarun4279/av-board-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ucStub overrides only FreeUsers; calls to anything else panic via the
// embedded nil interface.
type ucStub struct {
	usecase.InterfaceUsecase
	freeUsers func(ctx context.Context, fromRaw, toRaw string, rawTags []string) ([]entities.User, error)
}

func (s *ucStub) FreeUsers(ctx context.Context, fromRaw, toRaw string, rawTags []string) ([]entities.User, error) {
	return s.freeUsers(ctx, fromRaw, toRaw, rawTags)
}

func availabilityApp(stub *ucStub) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), stub)
	RegisterRoutes(app, h)
	return app
}

func TestGetFreeUsersPassesRawTagOccurrences(t *testing.T) {
	var gotFrom, gotTo string
	var gotTags []string
	stub := &ucStub{freeUsers: func(_ context.Context, fromRaw, toRaw string, rawTags []string) ([]entities.User, error) {
		gotFrom, gotTo, gotTags = fromRaw, toRaw, rawTags
		return []entities.User{}, nil
	}}
	app := availabilityApp(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/availability/free-users?from=2026-02-06T11:00:00Z&to=2026-02-06T12:00:00Z&tags=backend,go&tags=frontend", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "2026-02-06T11:00:00Z", gotFrom)
	require.Equal(t, "2026-02-06T12:00:00Z", gotTo)
	require.Equal(t, []string{"backend,go", "frontend"}, gotTags)
	require.Equal(t, []string{"backend", "go", "frontend"}, availability.NormalizeTags(gotTags))
}

func TestGetFreeUsersRendersViews(t *testing.T) {
	phone := "+1-555-0100"
	stub := &ucStub{freeUsers: func(_ context.Context, _, _ string, _ []string) ([]entities.User, error) {
		return []entities.User{{
			ID:    "usr-1",
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: &phone,
			Tags:  []string{"backend"},
			BusySlots: []entities.BusySlot{
				{ID: "slot-1", UserID: "usr-1"},
			},
		}}, nil
	}}
	app := availabilityApp(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/availability/free-users?from=2026-02-06T11:00:00Z&to=2026-02-06T12:00:00Z", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Users []api.UserView `json:"users"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Users, 1)
	require.Equal(t, "usr-1", body.Users[0].ID)
	require.Equal(t, []string{"backend"}, body.Users[0].Tags)
	require.Len(t, body.Users[0].BusySlots, 1)
}

func TestGetFreeUsersMissingWindowIsBadRequest(t *testing.T) {
	// The stub mirrors the usecase's fail-fast parse so the handler's
	// error mapping is what is under test here.
	stub := &ucStub{freeUsers: func(_ context.Context, fromRaw, toRaw string, _ []string) ([]entities.User, error) {
		_, err := availability.ParseWindow(fromRaw, toRaw)
		return nil, err
	}}
	app := availabilityApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/availability/free-users?to=2026-02-06T12:00:00Z", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.CodeInvalidInput, body.Error.Code)
	require.Contains(t, body.Error.Message, "from")
}
