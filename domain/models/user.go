// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// User - a registered account that can own notes and hold edit grants
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username    string    `json:"username" gorm:"type:varchar(50);not null;unique"`
	DisplayName string    `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	PhotoURL    string    `json:"photo_url,omitempty" gorm:"type:text"`
	Email       string    `json:"email,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	OwnedNotes     []*Note         `json:"owned_notes,omitempty" gorm:"foreignkey:OwnerID"`
	HistoryEntries []*HistoryEntry `json:"history_entries,omitempty" gorm:"foreignkey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// Group - a named collection of users addressable by a single grant
type Group struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	DisplayName string    `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	Special     bool      `json:"special" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	Members []*User `json:"members,omitempty" gorm:"many2many:group_members;"`
}

func (Group) TableName() string {
	return "groups"
}
