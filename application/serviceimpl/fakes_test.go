package serviceimpl

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/models"
	"github.com/inkpad/gofiber-notes-api/domain/service"
	"github.com/inkpad/gofiber-notes-api/pkg/keylock"
)

// store is the shared in-memory backing state of the fake
// repositories. Every read hands out an independent copy, so no two
// loaded notes ever alias the same permission slices.
type store struct {
	notes     map[uuid.UUID]*models.Note
	revisions map[uuid.UUID][]*models.Revision
	users     map[string]*models.User
	groups    map[string]*models.Group
}

func newStore() *store {
	return &store{
		notes:     make(map[uuid.UUID]*models.Note),
		revisions: make(map[uuid.UUID][]*models.Revision),
		users:     make(map[string]*models.User),
		groups:    make(map[string]*models.Group),
	}
}

func (s *store) addUser(username string) *models.User {
	user := &models.User{ID: uuid.New(), Username: username}
	s.users[username] = user
	return user
}

func (s *store) addGroup(name string) *models.Group {
	group := &models.Group{ID: uuid.New(), Name: name}
	s.groups[name] = group
	return group
}

func cloneUserPermissions(permissions []*models.NoteUserPermission) []*models.NoteUserPermission {
	if permissions == nil {
		return nil
	}
	out := make([]*models.NoteUserPermission, len(permissions))
	for i, permission := range permissions {
		copied := *permission
		out[i] = &copied
	}
	return out
}

func cloneGroupPermissions(permissions []*models.NoteGroupPermission) []*models.NoteGroupPermission {
	if permissions == nil {
		return nil
	}
	out := make([]*models.NoteGroupPermission, len(permissions))
	for i, permission := range permissions {
		copied := *permission
		out[i] = &copied
	}
	return out
}

func cloneNote(note *models.Note) *models.Note {
	copied := *note
	copied.Revisions = nil
	copied.UserPermissions = cloneUserPermissions(note.UserPermissions)
	copied.GroupPermissions = cloneGroupPermissions(note.GroupPermissions)
	if note.Tags != nil {
		copied.Tags = append([]*models.Tag{}, note.Tags...)
	}
	if note.AuthorColors != nil {
		copied.AuthorColors = append([]*models.AuthorColor{}, note.AuthorColors...)
	}
	if note.HistoryEntries != nil {
		copied.HistoryEntries = append([]*models.HistoryEntry{}, note.HistoryEntries...)
	}
	return &copied
}

// ---- note repository ----

type fakeNoteRepo struct {
	s *store
}

func (r *fakeNoteRepo) Create(note *models.Note) error {
	for _, revision := range note.Revisions {
		r.s.revisions[note.ID] = append(r.s.revisions[note.ID], revision)
	}
	r.s.notes[note.ID] = cloneNote(note)
	return nil
}

func (r *fakeNoteRepo) GetByIDOrAlias(idOrAlias string) (*models.Note, error) {
	if id, err := uuid.Parse(idOrAlias); err == nil {
		if note, ok := r.s.notes[id]; ok {
			return cloneNote(note), nil
		}
	}
	for _, note := range r.s.notes {
		if note.Alias != nil && *note.Alias == idOrAlias {
			return cloneNote(note), nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) Save(note *models.Note) error {
	stored, ok := r.s.notes[note.ID]
	if !ok {
		return nil
	}
	stored.Title = note.Title
	stored.Description = note.Description
	stored.Alias = note.Alias
	stored.UpdatedAt = note.UpdatedAt
	return nil
}

func (r *fakeNoteRepo) Delete(note *models.Note) error {
	delete(r.s.notes, note.ID)
	delete(r.s.revisions, note.ID)
	return nil
}

func (r *fakeNoteRepo) FindByOwnerID(ownerID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note
	for _, note := range r.s.notes {
		if note.OwnerID != nil && *note.OwnerID == ownerID {
			notes = append(notes, cloneNote(note))
		}
	}
	return notes, nil
}

func (r *fakeNoteRepo) SavePermissions(note *models.Note) error {
	stored, ok := r.s.notes[note.ID]
	if !ok {
		return nil
	}
	stored.UserPermissions = cloneUserPermissions(note.UserPermissions)
	stored.GroupPermissions = cloneGroupPermissions(note.GroupPermissions)
	return nil
}

func (r *fakeNoteRepo) IncrementViewCount(id uuid.UUID, delta int64) error {
	if note, ok := r.s.notes[id]; ok {
		note.ViewCount += delta
	}
	return nil
}

// ---- revision repository ----

type fakeRevisionRepo struct {
	s *store
}

func (r *fakeRevisionRepo) Create(revision *models.Revision) error {
	r.s.revisions[revision.NoteID] = append(r.s.revisions[revision.NoteID], revision)
	return nil
}

func (r *fakeRevisionRepo) GetLatestByNoteID(noteID uuid.UUID) (*models.Revision, error) {
	revisions := r.s.revisions[noteID]
	if len(revisions) == 0 {
		return nil, nil
	}
	return revisions[len(revisions)-1], nil
}

func (r *fakeRevisionRepo) GetFirstByNoteID(noteID uuid.UUID) (*models.Revision, error) {
	revisions := r.s.revisions[noteID]
	if len(revisions) == 0 {
		return nil, nil
	}
	return revisions[0], nil
}

func (r *fakeRevisionRepo) FindByNoteID(noteID uuid.UUID) ([]*models.Revision, error) {
	return append([]*models.Revision{}, r.s.revisions[noteID]...), nil
}

func (r *fakeRevisionRepo) GetByID(noteID, revisionID uuid.UUID) (*models.Revision, error) {
	for _, revision := range r.s.revisions[noteID] {
		if revision.ID == revisionID {
			return revision, nil
		}
	}
	return nil, nil
}

// ---- user / group repositories ----

type fakeUserRepo struct {
	s *store
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.s.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	for _, user := range r.s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	return r.s.users[username], nil
}

type fakeGroupRepo struct {
	s *store
}

func (r *fakeGroupRepo) Create(group *models.Group) error {
	r.s.groups[group.Name] = group
	return nil
}

func (r *fakeGroupRepo) GetByName(name string) (*models.Group, error) {
	return r.s.groups[name], nil
}

// ---- wiring ----

type testEnv struct {
	store       *store
	notes       service.NoteService
	revisions   service.RevisionService
	permissions service.PermissionService
	projections service.ProjectionService
	users       service.UserService
}

func newTestEnv() *testEnv {
	s := newStore()
	noteRepo := &fakeNoteRepo{s: s}
	revisionRepo := &fakeRevisionRepo{s: s}
	userRepo := &fakeUserRepo{s: s}
	groupRepo := &fakeGroupRepo{s: s}

	log := zerolog.Nop()
	locks := keylock.New()

	revisions := NewRevisionService(revisionRepo, log)
	users := NewUserService(userRepo, log)
	notes := NewNoteService(noteRepo, revisionRepo, revisions, locks, log)
	permissions := NewPermissionService(notes, noteRepo, userRepo, groupRepo, locks, log)
	projections := NewProjectionService(revisions, users)

	return &testEnv{
		store:       s,
		notes:       notes,
		revisions:   revisions,
		permissions: permissions,
		projections: projections,
		users:       users,
	}
}
