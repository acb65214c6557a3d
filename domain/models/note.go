// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Note - a collaboratively edited document. Addressed either by its
// immutable ID or, when set, by its human-chosen unique alias. A note
// always has at least one revision after creation.
type Note struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Alias       *string    `json:"alias,omitempty" gorm:"type:varchar(255);uniqueIndex"`
	Title       string     `json:"title" gorm:"type:varchar(255)"`
	Description string     `json:"description" gorm:"type:text"`
	ViewCount   int64      `json:"view_count" gorm:"default:0"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"` // NULL = ownerless note
	CreatedAt   time.Time  `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Owner            *User                  `json:"owner,omitempty" gorm:"foreignkey:OwnerID"`
	Revisions        []*Revision            `json:"revisions,omitempty" gorm:"foreignkey:NoteID;constraint:OnDelete:CASCADE"`
	UserPermissions  []*NoteUserPermission  `json:"user_permissions,omitempty" gorm:"foreignkey:NoteID;constraint:OnDelete:CASCADE"`
	GroupPermissions []*NoteGroupPermission `json:"group_permissions,omitempty" gorm:"foreignkey:NoteID;constraint:OnDelete:CASCADE"`
	Tags             []*Tag                 `json:"tags,omitempty" gorm:"many2many:note_tags;"`
	AuthorColors     []*AuthorColor         `json:"author_colors,omitempty" gorm:"foreignkey:NoteID;constraint:OnDelete:CASCADE"`
	// HistoryEntries stays nil for ownerless notes. Callers must treat
	// nil and empty the same.
	HistoryEntries []*HistoryEntry `json:"history_entries,omitempty" gorm:"foreignkey:NoteID;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}

// Tag - a named label shared between notes. Identity is the name.
type Tag struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `json:"name" gorm:"type:varchar(255);not null;unique"`

	Notes []*Note `json:"notes,omitempty" gorm:"many2many:note_tags;"`
}

func (Tag) TableName() string {
	return "tags"
}

// AuthorColor - the display color assigned to one contributing user on
// one note. At most one per (note, user).
type AuthorColor struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID uuid.UUID `json:"note_id" gorm:"type:uuid;not null;uniqueIndex:idx_author_colors_note_user"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_author_colors_note_user"`
	Color  string    `json:"color" gorm:"type:varchar(7)"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (AuthorColor) TableName() string {
	return "author_colors"
}

// HistoryEntry - marks that a note appears in a user's history view.
// Created at note creation only when an owner was supplied.
type HistoryEntry struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID uuid.UUID `json:"note_id" gorm:"type:uuid;not null;uniqueIndex:idx_history_note_user"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_history_note_user"`
	Pinned bool      `json:"pinned" gorm:"default:false"`
	SeenAt time.Time `json:"seen_at" gorm:"type:timestamp with time zone;default:now()"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}
