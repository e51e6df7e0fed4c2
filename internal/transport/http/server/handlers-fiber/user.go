package handlers_fiber

import (
	"net/http"

	"github.com/tarun4279/av-board-api/internal/api"
	"github.com/tarun4279/av-board-api/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUser registers a user with an optional initial tag set.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.CreateUser(c.Context(), mapper.FromAPICreateUser(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User api.UserView `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// GetUsers lists every user with tags and busy slots.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []api.UserView `json:"users"`
	}{Users: mapper.ToAPIUserList(users)})
}

// GetUser returns one user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	usr, err := h.uc.User(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		User api.UserView `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// PatchUser applies a partial profile update.
func (h *Handler) PatchUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.UpdateUser(c.Context(), c.Params("id"), mapper.FromAPIUpdateUser(body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		User api.UserView `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}

// DeleteUser removes a user and cascades its tags and busy slots.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
