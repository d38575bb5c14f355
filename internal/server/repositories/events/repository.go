package events

import (
	"context"
	"time"

	"github.com/dynsched/dynsched/internal/server/models"
)

// Filter narrows ListByUser to events whose date falls inside the
// [Start, End] window. Nil bounds are open.
type Filter struct {
	Start *time.Time
	End   *time.Time
}

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListByUser(ctx context.Context, userID string, filter Filter) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}
