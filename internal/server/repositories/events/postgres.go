package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/dbx"
	"github.com/dynsched/dynsched/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {

	query :=
		`INSERT INTO events (user_id, title, description, date, event_time, priority, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.UserID, event.Title, event.Description, event.Date,
		event.EventTime, event.Priority, event.Category).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query :=
		`SELECT id, user_id, title, description, date, event_time, priority, category, created_at
		 FROM events
		 WHERE id = $1
		 `

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.UserID, &event.Title, &event.Description,
		&event.Date, &event.EventTime, &event.Priority, &event.Category, &event.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, filter Filter) ([]*models.Event, error) {
	query :=
		`SELECT id, user_id, title, description, date, event_time, priority, category, created_at
		 FROM events
		 WHERE user_id = $1
		   AND ($2::timestamptz IS NULL OR date >= $2)
		   AND ($3::timestamptz IS NULL OR date <= $3)
		 ORDER BY date
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.UserID, &event.Title, &event.Description,
			&event.Date, &event.EventTime, &event.Priority, &event.Category, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, event *models.Event) error {
	query :=
		`UPDATE events
		 SET title = $2, description = $3, date = $4, event_time = $5, priority = $6, category = $7
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Date,
		event.EventTime, event.Priority, event.Category)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
