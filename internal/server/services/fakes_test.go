package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/dbx"
	"github.com/dynsched/dynsched/internal/server/models"
	eventsrepo "github.com/dynsched/dynsched/internal/server/repositories/events"
	"github.com/dynsched/dynsched/internal/server/repositories/repomanager"
	tasksrepo "github.com/dynsched/dynsched/internal/server/repositories/tasks"
	usersrepo "github.com/dynsched/dynsched/internal/server/repositories/users"
)

// In-memory repository fakes keyed by id. Counters start at 1 so ids are
// stable across a test.

type fakeUsersRepo struct {
	byID       map[string]*models.User
	byUsername map[string]*models.User
	nextID     int
	err        error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}, byUsername: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = fakeID("u", f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateProfileImage(ctx context.Context, id, storageKey string) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.ProfileImage = storageKey
	return nil
}

type fakeEventsRepo struct {
	byID   map[string]*models.Event
	nextID int
	err    error
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{byID: map[string]*models.Event{}, nextID: 1}
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e.ID = fakeID("e", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e, nil
}

func (f *fakeEventsRepo) ListByUser(ctx context.Context, userID string, filter eventsrepo.Filter) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Event
	for _, e := range f.byID {
		if e.UserID != userID {
			continue
		}
		if filter.Start != nil && e.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && e.Date.After(*filter.End) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventsRepo) Update(ctx context.Context, e *models.Event) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ID]; !ok {
		return common.ErrorNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTasksRepo struct {
	byID   map[string]*models.Task
	order  []string
	nextID int
	err    error
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{byID: map[string]*models.Task{}, nextID: 1}
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	t.ID = fakeID("t", f.nextID)
	f.nextID++
	f.byID[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTasksRepo) List(ctx context.Context, filter tasksrepo.Filter) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Task
	for _, id := range f.order {
		t, ok := f.byID[id]
		if !ok {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, t *models.Task) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[t.ID]; !ok {
		return common.ErrorNotFound
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	e *fakeEventsRepo
	t *fakeTasksRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), e: newFakeEventsRepo(), t: newFakeTasksRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository     { return m.e }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository       { return m.t }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func fakeID(prefix string, n int) string {
	return prefix + "-" + strconv.Itoa(n)
}
