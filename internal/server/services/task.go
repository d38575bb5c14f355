package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/server/models"
	"github.com/dynsched/dynsched/internal/server/repositories/repomanager"
	tasksrepo "github.com/dynsched/dynsched/internal/server/repositories/tasks"
	"github.com/dynsched/dynsched/internal/server/schedule"
)

// TaskUpdate carries a partial task update; nil fields are left unchanged.
type TaskUpdate struct {
	Name        *string
	Description *string
	DueDate     *time.Time
	Priority    *int
	Status      *string
	Tags        *[]string
}

// TaskRef addresses a task for scheduling suggestions: either a stored task
// by ID or an inline task that was never persisted.
type TaskRef struct {
	ID     string
	Inline *models.Task
}

// TaskService implements task CRUD and the scheduling-suggestions helper.
// Tasks are deployment-global; callers still pass through the auth guard.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

// Create stores a new task. Name is required; priority defaults to 3 and
// status to "pending".
func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Name == "" {
		return nil, common.ErrorValidation
	}
	if task.Priority == 0 {
		task.Priority = models.DefaultTaskPriority
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	repo := s.repomanager.Tasks(s.db)
	created, err := repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return created, nil
}

// Get loads a task by id.
func (s *TaskService) Get(ctx context.Context, taskID string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return task, nil
}

// List returns tasks filtered by priority and/or status.
func (s *TaskService) List(ctx context.Context, filter tasksrepo.Filter) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	list, err := repo.List(ctx, filter)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return list, nil
}

// Update applies a partial update. CompletedAt is stamped exactly once, on
// the transition into "completed"; returning to the status later does not
// refresh it.
func (s *TaskService) Update(ctx context.Context, taskID string, update TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}

	if update.Name != nil {
		task.Name = *update.Name
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Tags != nil {
		task.Tags = *update.Tags
	}
	if update.Status != nil {
		if *update.Status == models.StatusCompleted && task.CompletedAt == nil {
			now := s.now()
			task.CompletedAt = &now
		}
		task.Status = *update.Status
	}
	if task.Name == "" {
		return nil, common.ErrorValidation
	}

	if err := repo.Update(ctx, task); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return task, nil
}

// Delete removes a task by id.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorUnavailable
	}
	return nil
}

// Suggestions resolves the given refs and returns them ordered by
// (priority, due date). Stored tasks that no longer exist are skipped
// rather than failing the whole request.
func (s *TaskService) Suggestions(ctx context.Context, refs []TaskRef) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	var resolved []*models.Task
	for _, ref := range refs {
		if ref.Inline != nil {
			resolved = append(resolved, ref.Inline)
			continue
		}
		task, err := repo.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			return nil, common.ErrorUnavailable
		}
		resolved = append(resolved, task)
	}

	return schedule.Rank(resolved), nil
}
