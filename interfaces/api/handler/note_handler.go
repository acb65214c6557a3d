// interfaces/api/handler/note_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
)

type NoteHandler struct {
	noteService       service.NoteService
	permissionService service.PermissionService
	revisionService   service.RevisionService
	projectionService service.ProjectionService
	userService       service.UserService
	viewTracker       service.ViewTrackerService
}

func NewNoteHandler(
	noteService service.NoteService,
	permissionService service.PermissionService,
	revisionService service.RevisionService,
	projectionService service.ProjectionService,
	userService service.UserService,
	viewTracker service.ViewTrackerService,
) *NoteHandler {
	return &NoteHandler{
		noteService:       noteService,
		permissionService: permissionService,
		revisionService:   revisionService,
		projectionService: projectionService,
		userService:       userService,
		viewTracker:       viewTracker,
	}
}

// CreateNote creates a new note from content, an optional alias and an
// optional owner username.
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var input dto.CreateNoteRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	var owner *models.User
	if input.Owner != nil && *input.Owner != "" {
		user, err := h.userService.GetUserByUsername(*input.Owner)
		if err != nil {
			return respondError(c, err)
		}
		owner = user
	}

	note, err := h.noteService.CreateNote(input.Content, input.Alias, owner)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.projectionService.ToNoteData(note)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    data,
	})
}

// GetNote returns the full note representation and counts the view.
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.noteService.GetNoteByIDOrAlias(c.Params("noteIdOrAlias"))
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.projectionService.ToNoteData(note)
	if err != nil {
		return respondError(c, err)
	}

	// best effort, a miss is not worth failing the read
	_ = h.viewTracker.RecordView(c.UserContext(), note.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// UpdateNote appends a new revision with the submitted content.
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var input dto.UpdateNoteRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	note, err := h.noteService.UpdateNoteByIDOrAlias(c.Params("noteIdOrAlias"), input.Content)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.projectionService.ToNoteData(note)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note updated successfully",
		"data":    data,
	})
}

// DeleteNote removes the note and everything it owns.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	if err := h.noteService.DeleteNoteByIDOrAlias(c.Params("noteIdOrAlias")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note deleted successfully",
	})
}

// GetNoteContent returns the raw content of the latest revision.
func (h *NoteHandler) GetNoteContent(c *fiber.Ctx) error {
	note, err := h.noteService.GetNoteByIDOrAlias(c.Params("noteIdOrAlias"))
	if err != nil {
		return respondError(c, err)
	}

	content, err := h.projectionService.GetNoteContent(note)
	if err != nil {
		return respondError(c, err)
	}

	_ = h.viewTracker.RecordView(c.UserContext(), note.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    content,
	})
}

// GetNoteMetadata returns the read-only note summary.
func (h *NoteHandler) GetNoteMetadata(c *fiber.Ctx) error {
	note, err := h.noteService.GetNoteByIDOrAlias(c.Params("noteIdOrAlias"))
	if err != nil {
		return respondError(c, err)
	}

	metadata, err := h.projectionService.ToNoteMetadata(note)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    metadata,
	})
}

// UpdateNotePermissions reconciles the submitted desired state against
// the note's stored grants.
func (h *NoteHandler) UpdateNotePermissions(c *fiber.Ctx) error {
	var input dto.NotePermissionsUpdate
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	note, err := h.permissionService.UpdateNotePermissions(c.Params("noteIdOrAlias"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Permissions updated successfully",
		"data":    h.projectionService.ToNotePermissions(note),
	})
}

// GetNoteRevisions lists the note's revision history in creation
// order.
func (h *NoteHandler) GetNoteRevisions(c *fiber.Ctx) error {
	note, err := h.noteService.GetNoteByIDOrAlias(c.Params("noteIdOrAlias"))
	if err != nil {
		return respondError(c, err)
	}

	revisions, err := h.revisionService.GetAllRevisions(note.ID)
	if err != nil {
		return respondError(c, err)
	}

	infos := make([]dto.RevisionInfo, 0, len(revisions))
	for _, revision := range revisions {
		infos = append(infos, dto.RevisionInfo{
			ID:        revision.ID,
			Length:    revision.Length,
			CreatedAt: revision.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    infos,
	})
}

// GetNoteRevision returns one full revision of the note.
func (h *NoteHandler) GetNoteRevision(c *fiber.Ctx) error {
	note, err := h.noteService.GetNoteByIDOrAlias(c.Params("noteIdOrAlias"))
	if err != nil {
		return respondError(c, err)
	}

	revisionID, err := uuid.Parse(c.Params("revisionId"))
	if err != nil {
		return badRequest(c, "Invalid revision ID: "+err.Error())
	}

	revision, err := h.revisionService.GetRevision(note.ID, revisionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.RevisionData{
			ID:        revision.ID,
			Content:   revision.Content,
			Patch:     revision.Patch,
			CreatedAt: revision.CreatedAt,
		},
	})
}

// GetUserNotes lists the metadata of all notes owned by the user.
func (h *NoteHandler) GetUserNotes(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	notes, err := h.noteService.GetUserNotes(user)
	if err != nil {
		return respondError(c, err)
	}

	summaries := make([]dto.NoteMetadata, 0, len(notes))
	for _, note := range notes {
		metadata, err := h.projectionService.ToNoteMetadata(note)
		if err != nil {
			return respondError(c, err)
		}
		summaries = append(summaries, metadata)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summaries,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotInDB):
		status = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrPermissionsUpdateInconsistent):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrPermission):
		status = fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrClient):
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
