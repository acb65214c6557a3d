// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/inkpad/gofiber-notes-api/application/serviceimpl"
	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/infrastructure/persistence/postgres"
	"github.com/inkpad/gofiber-notes-api/interfaces/api/handler"
	"github.com/inkpad/gofiber-notes-api/pkg/keylock"
	"github.com/inkpad/gofiber-notes-api/pkg/scheduler"
)

// Container holds all application dependencies, constructed explicitly
// and in dependency order.
type Container struct {
	// Repositories
	NoteRepo     repository.NoteRepository
	RevisionRepo repository.RevisionRepository
	UserRepo     repository.UserRepository
	GroupRepo    repository.GroupRepository

	// Services
	NoteService       service.NoteService
	RevisionService   service.RevisionService
	PermissionService service.PermissionService
	ProjectionService service.ProjectionService
	UserService       service.UserService
	ViewTracker       service.ViewTrackerService

	// Handlers
	NoteHandler *handler.NoteHandler

	// Background jobs
	RedisClient      *redis.Client
	ViewCountFlusher *scheduler.ViewCountFlusher
}

// NewContainer wires repositories, services and handlers.
func NewContainer(db *gorm.DB, redisClient *redis.Client, log zerolog.Logger) (*Container, error) {
	container := &Container{
		RedisClient: redisClient,
	}

	container.NoteRepo = postgres.NewNoteRepository(db)
	container.RevisionRepo = postgres.NewRevisionRepository(db)
	container.UserRepo = postgres.NewUserRepository(db)
	container.GroupRepo = postgres.NewGroupRepository(db)

	// one lock space shared by every mutating note operation
	locks := keylock.New()

	container.RevisionService = serviceimpl.NewRevisionService(container.RevisionRepo, log)
	container.UserService = serviceimpl.NewUserService(container.UserRepo, log)
	container.NoteService = serviceimpl.NewNoteService(
		container.NoteRepo,
		container.RevisionRepo,
		container.RevisionService,
		locks,
		log,
	)
	container.PermissionService = serviceimpl.NewPermissionService(
		container.NoteService,
		container.NoteRepo,
		container.UserRepo,
		container.GroupRepo,
		locks,
		log,
	)
	container.ProjectionService = serviceimpl.NewProjectionService(
		container.RevisionService,
		container.UserService,
	)
	container.ViewTracker = serviceimpl.NewViewTracker(redisClient, container.NoteRepo, log)

	container.NoteHandler = handler.NewNoteHandler(
		container.NoteService,
		container.PermissionService,
		container.RevisionService,
		container.ProjectionService,
		container.UserService,
		container.ViewTracker,
	)

	container.ViewCountFlusher = scheduler.NewViewCountFlusher(container.ViewTracker, log)

	return container, nil
}
