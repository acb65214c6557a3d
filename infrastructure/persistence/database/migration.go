// infrastructure/persistence/database/migration.go
package database

import (
	"gorm.io/gorm"

	"github.com/inkpad/gofiber-notes-api/domain/models"
)

// RunMigration migrates all models to the database. Order matters:
// base tables first, then tables carrying foreign keys into them.
func RunMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		// base tables
		&models.User{},
		&models.Group{},
		&models.Tag{},

		// FK into the base tables
		&models.Note{},

		// FK into notes
		&models.Revision{},
		&models.NoteUserPermission{},
		&models.NoteGroupPermission{},
		&models.AuthorColor{},
		&models.HistoryEntry{},

		// FK into revisions
		&models.Authorship{},
	)
}

// CreateIndices adds the indices the frequent lookups depend on.
func CreateIndices(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_revisions_note_created ON revisions(note_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_notes_owner_id ON notes(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_authorships_revision_id ON authorships(revision_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
	}
	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetupDatabase runs migration and index creation in one step.
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	return CreateIndices(db)
}
