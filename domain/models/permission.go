// domain/models/permission.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteUserPermission - an edit grant for a single user on a single
// note. A user appears at most once in a note's user grant set.
type NoteUserPermission struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID    uuid.UUID `json:"note_id" gorm:"type:uuid;not null;uniqueIndex:idx_note_user_permission"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_note_user_permission"`
	CanEdit   bool      `json:"can_edit" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (NoteUserPermission) TableName() string {
	return "note_user_permissions"
}

// NewNoteUserPermission creates a grant for the given user.
func NewNoteUserPermission(noteID uuid.UUID, user *User, canEdit bool) *NoteUserPermission {
	return &NoteUserPermission{
		ID:        uuid.New(),
		NoteID:    noteID,
		UserID:    user.ID,
		CanEdit:   canEdit,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		User:      user,
	}
}

// NoteGroupPermission - an edit grant for a group on a note. GroupID
// stays NULL when the group directory could not resolve the name; the
// requested name is kept in GroupName so the grant keeps its identity
// for later reconciliation.
type NoteGroupPermission struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID    uuid.UUID  `json:"note_id" gorm:"type:uuid;not null;uniqueIndex:idx_note_group_permission"`
	GroupID   *uuid.UUID `json:"group_id,omitempty" gorm:"type:uuid"`
	GroupName string     `json:"group_name" gorm:"type:varchar(100);not null;uniqueIndex:idx_note_group_permission"`
	CanEdit   bool       `json:"can_edit" gorm:"default:false"`
	CreatedAt time.Time  `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	Group *Group `json:"group,omitempty" gorm:"foreignkey:GroupID"`
}

func (NoteGroupPermission) TableName() string {
	return "note_group_permissions"
}

// NewNoteGroupPermission creates a grant for the named group. group may
// be nil when the directory has no entry for the name.
func NewNoteGroupPermission(noteID uuid.UUID, groupName string, group *Group, canEdit bool) *NoteGroupPermission {
	permission := &NoteGroupPermission{
		ID:        uuid.New(),
		NoteID:    noteID,
		GroupName: groupName,
		CanEdit:   canEdit,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if group != nil {
		permission.GroupID = &group.ID
		permission.Group = group
	}
	return permission
}
