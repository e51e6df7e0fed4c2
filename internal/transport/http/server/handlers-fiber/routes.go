package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes binds all endpoints on the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/availability/free-users", h.GetFreeUsers)

	app.Post("/users", h.PostUser)
	app.Get("/users", h.GetUsers)
	app.Get("/users/:id", h.GetUser)
	app.Patch("/users/:id", h.PatchUser)
	app.Delete("/users/:id", h.DeleteUser)

	app.Post("/users/:id/tags", h.PostUserTags)
	app.Delete("/users/:id/tags", h.DeleteUserTags)

	app.Post("/users/:id/busy", h.PostUserBusy)
	app.Delete("/users/:id/busy/:slotId", h.DeleteUserBusy)

	app.Get("/tags", h.GetTags)
	app.Get("/stats", h.GetStats)
}
