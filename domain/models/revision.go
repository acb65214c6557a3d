// domain/models/revision.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Revision - one immutable content snapshot in a note's history. The
// sequence is append-only: revisions are created on note creation and
// on content updates, never mutated or deleted on their own.
type Revision struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NoteID  uuid.UUID `json:"note_id" gorm:"type:uuid;not null;index"`
	Content string    `json:"content" gorm:"type:text;not null"`
	// Patch carries the full snapshot as well. Computing a real diff
	// against the previous revision is a pending followup inherited
	// from the data model; nothing reads Patch as a delta.
	Patch     string    `json:"patch" gorm:"type:text"`
	Length    int       `json:"length" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now();index"`

	// Associations
	Authorships []*Authorship `json:"authorships,omitempty" gorm:"foreignkey:RevisionID;constraint:OnDelete:CASCADE"`
}

func (Revision) TableName() string {
	return "revisions"
}

// NewRevision builds the snapshot for the given note. Patch receives
// the same content as Content.
func NewRevision(noteID uuid.UUID, content string) *Revision {
	return &Revision{
		ID:        uuid.New(),
		NoteID:    noteID,
		Content:   content,
		Patch:     content,
		Length:    len(content),
		CreatedAt: time.Now(),
	}
}

// Authorship - attributes the character range [StartPos, EndPos) of a
// revision's content to a user. Ranges from different contributors may
// overlap.
type Authorship struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RevisionID uuid.UUID `json:"revision_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	StartPos   int       `json:"start_pos" gorm:"not null"`
	EndPos     int       `json:"end_pos" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

func (Authorship) TableName() string {
	return "authorships"
}
