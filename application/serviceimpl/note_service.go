// application/serviceimpl/note_service.go
package serviceimpl

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/apperrors"
	"github.com/inkpad/gofiber-notes-api/pkg/keylock"
)

type noteService struct {
	noteRepo     repository.NoteRepository
	revisionRepo repository.RevisionRepository
	revisions    service.RevisionService
	locks        *keylock.KeyLock
	log          zerolog.Logger
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(
	noteRepo repository.NoteRepository,
	revisionRepo repository.RevisionRepository,
	revisions service.RevisionService,
	locks *keylock.KeyLock,
	log zerolog.Logger,
) service.NoteService {
	return &noteService{
		noteRepo:     noteRepo,
		revisionRepo: revisionRepo,
		revisions:    revisions,
		locks:        locks,
		log:          log.With().Str("component", "notes").Logger(),
	}
}

// CreateNote builds a new note with exactly one initial revision and
// persists it. Permission sets and tags start empty. With an owner, a
// history entry for that user is created; ownerless notes keep their
// history entries nil.
func (s *noteService) CreateNote(content string, alias *string, owner *models.User) (*models.Note, error) {
	now := time.Now()
	note := &models.Note{
		ID:               uuid.New(),
		UserPermissions:  []*models.NoteUserPermission{},
		GroupPermissions: []*models.NoteGroupPermission{},
		Tags:             []*models.Tag{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	note.Revisions = []*models.Revision{models.NewRevision(note.ID, content)}

	if alias != nil {
		// Uniqueness is enforced by the alias index, not here.
		note.Alias = alias
	}
	if owner != nil {
		note.OwnerID = &owner.ID
		note.Owner = owner
		note.HistoryEntries = []*models.HistoryEntry{
			{
				ID:     uuid.New(),
				NoteID: note.ID,
				UserID: owner.ID,
				SeenAt: now,
				User:   owner,
			},
		}
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return note, nil
}

// GetNoteByIDOrAlias resolves a note by id first, alias second.
func (s *noteService) GetNoteByIDOrAlias(idOrAlias string) (*models.Note, error) {
	s.log.Debug().Str("note", idOrAlias).Msg("resolving note")

	note, err := s.noteRepo.GetByIDOrAlias(idOrAlias)
	if err != nil {
		return nil, err
	}
	if note == nil {
		s.log.Debug().Str("note", idOrAlias).Msg("note not found")
		return nil, fmt.Errorf("note with id/alias '%s': %w", idOrAlias, apperrors.ErrNotInDB)
	}

	return note, nil
}

// UpdateNoteByIDOrAlias appends a new full-snapshot revision carrying
// the given content. Prior revisions stay untouched.
func (s *noteService) UpdateNoteByIDOrAlias(idOrAlias, content string) (*models.Note, error) {
	note, err := s.GetNoteByIDOrAlias(idOrAlias)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(note.ID.String())
	defer s.locks.Unlock(note.ID.String())

	revision := models.NewRevision(note.ID, content)
	if err := s.revisionRepo.Create(revision); err != nil {
		return nil, err
	}

	note.UpdatedAt = time.Now()
	if err := s.noteRepo.Save(note); err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNoteByIDOrAlias resolves and removes the note together with
// its revisions, permissions and history entries.
func (s *noteService) DeleteNoteByIDOrAlias(idOrAlias string) error {
	note, err := s.GetNoteByIDOrAlias(idOrAlias)
	if err != nil {
		return err
	}

	s.locks.Lock(note.ID.String())
	defer s.locks.Unlock(note.ID.String())

	return s.noteRepo.Delete(note)
}

// GetUserNotes returns all notes owned by the user.
func (s *noteService) GetUserNotes(owner *models.User) ([]*models.Note, error) {
	notes, err := s.noteRepo.FindByOwnerID(owner.ID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		return []*models.Note{}, nil
	}

	return notes, nil
}

// GetNoteContentByIDOrAlias resolves the note and returns the content
// of its latest revision.
func (s *noteService) GetNoteContentByIDOrAlias(idOrAlias string) (string, error) {
	note, err := s.GetNoteByIDOrAlias(idOrAlias)
	if err != nil {
		return "", err
	}

	revision, err := s.revisions.GetLatestRevision(note.ID)
	if err != nil {
		return "", err
	}

	return revision.Content, nil
}

// ToTagList returns the note's tag names in storage order. Duplicates
// in storage surface in the output.
func (s *noteService) ToTagList(note *models.Note) []string {
	tags := make([]string, 0, len(note.Tags))
	for _, tag := range note.Tags {
		tags = append(tags, tag.Name)
	}
	return tags
}
