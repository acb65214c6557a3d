// domain/dto/note_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============ Request DTOs ============

// CreateNoteRequest - payload for creating a note. Alias and Owner are
// optional; Owner is a username resolved through the user directory.
type CreateNoteRequest struct {
	Content string  `json:"content"`
	Alias   *string `json:"alias,omitempty"`
	Owner   *string `json:"owner,omitempty"`
}

// UpdateNoteRequest - payload for appending a new content revision.
type UpdateNoteRequest struct {
	Content string `json:"content"`
}

// NoteUserPermissionUpdate - one desired user grant.
type NoteUserPermissionUpdate struct {
	Username string `json:"username"`
	CanEdit  bool   `json:"can_edit"`
}

// NoteGroupPermissionUpdate - one desired group grant.
type NoteGroupPermissionUpdate struct {
	GroupName string `json:"group_name"`
	CanEdit   bool   `json:"can_edit"`
}

// NotePermissionsUpdate - the full desired permission state for one
// note. An empty SharedToUsers list clears all user grants; an empty
// SharedToGroups list clears all group grants.
type NotePermissionsUpdate struct {
	SharedToUsers  []NoteUserPermissionUpdate  `json:"shared_to_users"`
	SharedToGroups []NoteGroupPermissionUpdate `json:"shared_to_groups"`
}

// ============ Response DTOs ============

// UserInfo - the external projection of a user.
type UserInfo struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Email       string `json:"email,omitempty"`
}

// NoteUserPermissionEntry - one user grant in a permission projection.
type NoteUserPermissionEntry struct {
	User    UserInfo `json:"user"`
	CanEdit bool     `json:"can_edit"`
}

// NoteGroupPermissionEntry - one group grant in a permission
// projection. Group is empty when the grant's group was never resolved.
type NoteGroupPermissionEntry struct {
	Group   string `json:"group"`
	CanEdit bool   `json:"can_edit"`
}

// NotePermissions - the full permission view of a note.
type NotePermissions struct {
	Owner          *UserInfo                  `json:"owner,omitempty"`
	SharedToUsers  []NoteUserPermissionEntry  `json:"shared_to_users"`
	SharedToGroups []NoteGroupPermissionEntry `json:"shared_to_groups"`
}

// NoteMetadata - the read-only summary of a note.
type NoteMetadata struct {
	ID          uuid.UUID       `json:"id"`
	Alias       *string         `json:"alias,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CreateTime  time.Time       `json:"create_time"`
	UpdateTime  time.Time       `json:"update_time"`
	UpdateUser  *UserInfo       `json:"update_user,omitempty"`
	EditedBy    []string        `json:"edited_by"`
	Permissions NotePermissions `json:"permissions"`
	Tags        []string        `json:"tags"`
	ViewCount   int64           `json:"view_count"`
}

// NoteData - the full external representation of a note.
type NoteData struct {
	Content  string       `json:"content"`
	Metadata NoteMetadata `json:"metadata"`
	// EditedByAtPosition is always empty; per-position attribution is
	// served through revision authorships instead.
	EditedByAtPosition []NoteUserPermissionEntry `json:"edited_by_at_position"`
}

// RevisionInfo - summary of one revision for listing endpoints.
type RevisionInfo struct {
	ID        uuid.UUID `json:"id"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"created_at"`
}

// RevisionData - one full revision.
type RevisionData struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Patch     string    `json:"patch"`
	CreatedAt time.Time `json:"created_at"`
}
