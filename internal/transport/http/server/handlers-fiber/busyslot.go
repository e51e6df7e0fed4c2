package handlers_fiber

import (
	"net/http"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUserBusy records a busy slot for a user.
func (h *Handler) PostUserBusy(c *fiber.Ctx) error {
	var body api.MarkBusyRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	slot, err := h.uc.MarkBusy(c.Context(), c.Params("id"), body.From, body.To, body.Reason)
	if err != nil {
		h.log.Errorw("failed to mark busy", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		BusySlot api.BusySlotView `json:"busy_slot"`
	}{BusySlot: mapper.ToAPIBusySlot(*slot)})
}

// DeleteUserBusy removes one busy slot owned by the user.
func (h *Handler) DeleteUserBusy(c *fiber.Ctx) error {
	if err := h.uc.RemoveBusySlot(c.Context(), c.Params("id"), c.Params("slotId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
