package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/server/models"
	eventsrepo "github.com/dynsched/dynsched/internal/server/repositories/events"
	"github.com/dynsched/dynsched/internal/server/repositories/repomanager"
)

// EventUpdate carries a partial event update; nil fields are left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	EventTime   *string
	Priority    *int
	Category    *string
}

// EventService implements the owner-scoped event operations. Every read or
// write of an existing event checks existence first (NotFound) and ownership
// second (Forbidden), in that order.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

// Create stores a new event owned by userID. Title and date are required.
func (s *EventService) Create(ctx context.Context, userID string, event *models.Event) (*models.Event, error) {
	if event.Title == "" || event.Date.IsZero() {
		return nil, common.ErrorValidation
	}

	event.UserID = userID
	if event.Priority == 0 {
		event.Priority = 1
	}
	if event.Category == "" {
		event.Category = "Uncategorized"
	}

	repo := s.repomanager.Events(s.db)
	created, err := repo.Create(ctx, event)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return created, nil
}

// Get loads an event by id on behalf of userID.
func (s *EventService) Get(ctx context.Context, userID, eventID string) (*models.Event, error) {
	return s.loadOwned(ctx, userID, eventID)
}

// List returns userID's events, optionally narrowed to a date window,
// ordered by date.
func (s *EventService) List(ctx context.Context, userID string, filter eventsrepo.Filter) ([]*models.Event, error) {
	repo := s.repomanager.Events(s.db)
	list, err := repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return list, nil
}

// Update applies a partial update to an event owned by userID. The id, owner,
// and creation timestamp are never touched.
func (s *EventService) Update(ctx context.Context, userID, eventID string, update EventUpdate) (*models.Event, error) {
	event, err := s.loadOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.EventTime != nil {
		event.EventTime = *update.EventTime
	}
	if update.Priority != nil {
		event.Priority = *update.Priority
	}
	if update.Category != nil {
		event.Category = *update.Category
	}
	if event.Title == "" || event.Date.IsZero() {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Events(s.db)
	if err := repo.Update(ctx, event); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}
	return event, nil
}

// Delete removes an event owned by userID.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	if _, err := s.loadOwned(ctx, userID, eventID); err != nil {
		return err
	}

	repo := s.repomanager.Events(s.db)
	if err := repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorUnavailable
	}
	return nil
}

// loadOwned fetches the event and enforces ownership. A missing event
// reports NotFound before any ownership decision is made.
func (s *EventService) loadOwned(ctx context.Context, userID, eventID string) (*models.Event, error) {
	repo := s.repomanager.Events(s.db)
	event, err := repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorUnavailable
	}

	if event.UserID != userID {
		return nil, common.ErrorForbidden
	}

	return event, nil
}
