package handlers_fiber

import (
	"net/http"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/entities"
	"github.com/tarun4279/av-board-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUserTags attaches tags to a user, creating missing catalog entries.
func (h *Handler) PostUserTags(c *fiber.Ctx) error {
	var body api.TagsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.AddTags(c.Context(), c.Params("id"), body.Tags)
	if err != nil {
		h.log.Errorw("failed to add tags", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		User api.UserView `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// DeleteUserTags detaches tags by name; unknown names are ignored.
func (h *Handler) DeleteUserTags(c *fiber.Ctx) error {
	var body api.TagsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.RemoveTags(c.Context(), c.Params("id"), body.Tags)
	if err != nil {
		h.log.Errorw("failed to remove tags", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		User api.UserView `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// GetTags returns the global tag catalog with member counts.
func (h *Handler) GetTags(c *fiber.Ctx) error {
	catalog, err := h.uc.TagCatalog(c.Context())
	if err != nil {
		h.log.Errorw("failed to get tag catalog", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tags []entities.TagStat `json:"tags"`
	}{Tags: catalog})
}
