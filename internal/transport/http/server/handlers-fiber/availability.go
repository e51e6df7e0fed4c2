package handlers_fiber

import (
	"net/http"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetFreeUsers resolves the availability query. The tags parameter may
// be repeated, comma-separated, or both; from/to are RFC3339 UTC bounds
// of a half-open window.
func (h *Handler) GetFreeUsers(c *fiber.Ctx) error {
	users, err := h.uc.FreeUsers(c.Context(), c.Query("from"), c.Query("to"), queryValues(c, "tags"))
	if err != nil {
		h.log.Errorw("failed to resolve availability", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Users []api.UserView `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// queryValues returns every occurrence of a query parameter.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	vals := make([]string, 0, len(raw))
	for _, v := range raw {
		vals = append(vals, string(v))
	}
	return vals
}
