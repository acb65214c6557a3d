// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpad/gofiber-notes-api/interfaces/api/handler"
)

// SetupRoutes registers all API routes under /api/v1.
func SetupRoutes(app *fiber.App, noteHandler *handler.NoteHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	SetupNoteRoutes(v1, noteHandler)
}
