package tasks

import (
	"context"

	"github.com/dynsched/dynsched/internal/server/models"
)

// Filter narrows List to tasks with a given priority and/or status.
// Zero values leave the dimension unfiltered.
type Filter struct {
	Priority *int
	Status   string
}

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter Filter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}
