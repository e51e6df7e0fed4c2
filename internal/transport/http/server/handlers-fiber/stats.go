package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns directory-wide aggregates.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	statsRes, err := h.uc.Stats(c.Context())
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(statsRes)
}
