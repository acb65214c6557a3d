// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpad/gofiber-notes-api/interfaces/api/handler"
)

// SetupNoteRoutes wires the note endpoints.
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler) {
	notes := router.Group("/notes")

	notes.Post("/", noteHandler.CreateNote)

	// Sub-resources go before the bare :noteIdOrAlias routes so they
	// don't get swallowed.
	notes.Get("/:noteIdOrAlias/content", noteHandler.GetNoteContent)
	notes.Get("/:noteIdOrAlias/metadata", noteHandler.GetNoteMetadata)
	notes.Put("/:noteIdOrAlias/permissions", noteHandler.UpdateNotePermissions)
	notes.Get("/:noteIdOrAlias/revisions", noteHandler.GetNoteRevisions)
	notes.Get("/:noteIdOrAlias/revisions/:revisionId", noteHandler.GetNoteRevision)

	notes.Get("/:noteIdOrAlias", noteHandler.GetNote)
	notes.Put("/:noteIdOrAlias", noteHandler.UpdateNote)
	notes.Delete("/:noteIdOrAlias", noteHandler.DeleteNote)

	users := router.Group("/users")
	users.Get("/:username/notes", noteHandler.GetUserNotes)
}
