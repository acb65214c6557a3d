// application/serviceimpl/projection_service.go
package serviceimpl

import (
	"github.com/inkpad/gofiber-notes-api/domain/dto"
	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/service"
)

type projectionService struct {
	revisions service.RevisionService
	users     service.UserService
}

// NewProjectionService creates a new instance of ProjectionService.
func NewProjectionService(revisions service.RevisionService, users service.UserService) service.ProjectionService {
	return &projectionService{
		revisions: revisions,
		users:     users,
	}
}

// GetNoteContent returns the content of the note's latest revision.
func (s *projectionService) GetNoteContent(note *models.Note) (string, error) {
	revision, err := s.revisions.GetLatestRevision(note.ID)
	if err != nil {
		return "", err
	}
	return revision.Content, nil
}

// ToNotePermissions projects the note's owner and grant sets.
func (s *projectionService) ToNotePermissions(note *models.Note) dto.NotePermissions {
	permissions := dto.NotePermissions{
		Owner:          s.users.ToUserInfo(note.Owner),
		SharedToUsers:  make([]dto.NoteUserPermissionEntry, 0, len(note.UserPermissions)),
		SharedToGroups: make([]dto.NoteGroupPermissionEntry, 0, len(note.GroupPermissions)),
	}

	for _, permission := range note.UserPermissions {
		entry := dto.NoteUserPermissionEntry{CanEdit: permission.CanEdit}
		if info := s.users.ToUserInfo(permission.User); info != nil {
			entry.User = *info
		}
		permissions.SharedToUsers = append(permissions.SharedToUsers, entry)
	}

	for _, permission := range note.GroupPermissions {
		permissions.SharedToGroups = append(permissions.SharedToGroups, dto.NoteGroupPermissionEntry{
			Group:   permission.GroupName,
			CanEdit: permission.CanEdit,
		})
	}

	return permissions
}

// ToNoteMetadata aggregates the note's read-only summary. CreateTime
// and UpdateTime come from the first and latest revision; UpdateUser
// is the user behind the latest revision's most recently updated
// authorship.
func (s *projectionService) ToNoteMetadata(note *models.Note) (dto.NoteMetadata, error) {
	first, err := s.revisions.GetFirstRevision(note.ID)
	if err != nil {
		return dto.NoteMetadata{}, err
	}
	latest, err := s.revisions.GetLatestRevision(note.ID)
	if err != nil {
		return dto.NoteMetadata{}, err
	}

	editedBy := make([]string, 0, len(note.AuthorColors))
	for _, authorColor := range note.AuthorColors {
		if authorColor.User != nil {
			editedBy = append(editedBy, authorColor.User.Username)
		}
	}

	tags := make([]string, 0, len(note.Tags))
	for _, tag := range note.Tags {
		tags = append(tags, tag.Name)
	}

	return dto.NoteMetadata{
		ID:          note.ID,
		Alias:       note.Alias,
		Title:       note.Title,
		Description: note.Description,
		CreateTime:  first.CreatedAt,
		UpdateTime:  latest.CreatedAt,
		UpdateUser:  s.users.ToUserInfo(latestAuthor(latest)),
		EditedBy:    editedBy,
		Permissions: s.ToNotePermissions(note),
		Tags:        tags,
		ViewCount:   note.ViewCount,
	}, nil
}

// ToNoteData builds the full external representation of the note.
func (s *projectionService) ToNoteData(note *models.Note) (dto.NoteData, error) {
	content, err := s.GetNoteContent(note)
	if err != nil {
		return dto.NoteData{}, err
	}
	metadata, err := s.ToNoteMetadata(note)
	if err != nil {
		return dto.NoteData{}, err
	}

	return dto.NoteData{
		Content:            content,
		Metadata:           metadata,
		EditedByAtPosition: []dto.NoteUserPermissionEntry{},
	}, nil
}

// latestAuthor picks the user of the authorship with the maximum
// UpdatedAt. Ties keep the first-encountered authorship. Nil when the
// revision carries no authorships.
func latestAuthor(revision *models.Revision) *models.User {
	var newest *models.Authorship
	for _, authorship := range revision.Authorships {
		if newest == nil || authorship.UpdatedAt.After(newest.UpdatedAt) {
			newest = authorship
		}
	}
	if newest == nil {
		return nil
	}
	return newest.User
}
