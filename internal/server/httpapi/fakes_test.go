package httpapi

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

// In-memory repositories backing the handler tests.

type fakeUsersRepo struct {
	byID   map[string]*models.User
	nextID int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range f.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = "u-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateProfileImage(ctx context.Context, id, storageKey string) error {
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
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	e.ID = "e-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e, nil
}

func (f *fakeEventsRepo) ListByUser(ctx context.Context, userID string, filter eventsrepo.Filter) ([]*models.Event, error) {
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
	if _, ok := f.byID[e.ID]; !ok {
		return common.ErrorNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id string) error {
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
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	t.ID = "t-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.byID[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTasksRepo) List(ctx context.Context, filter tasksrepo.Filter) ([]*models.Task, error) {
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
	if _, ok := f.byID[t.ID]; !ok {
		return common.ErrorNotFound
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
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
	return &fakeRepoManager{
		u: &fakeUsersRepo{byID: map[string]*models.User{}, nextID: 1},
		e: &fakeEventsRepo{byID: map[string]*models.Event{}, nextID: 1},
		t: &fakeTasksRepo{byID: map[string]*models.Task{}, nextID: 1},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository     { return m.e }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository       { return m.t }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
