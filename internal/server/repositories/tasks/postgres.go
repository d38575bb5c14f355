package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	tags, err := marshalTags(task.Tags)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO tasks (name, description, due_date, priority, status, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		task.Name, task.Description, task.DueDate, task.Priority,
		task.Status, tags).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query :=
		`SELECT id, name, description, due_date, priority, status, tags, created_at, completed_at
		 FROM tasks
		 WHERE id = $1
		 `

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*models.Task, error) {
	query :=
		`SELECT id, name, description, due_date, priority, status, tags, created_at, completed_at
		 FROM tasks
		 WHERE ($1::int IS NULL OR priority = $1)
		   AND ($2::text = '' OR status = $2)
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.Priority, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) error {

	tags, err := marshalTags(task.Tags)
	if err != nil {
		return err
	}

	query :=
		`UPDATE tasks
		 SET name = $2, description = $3, due_date = $4, priority = $5, status = $6, tags = $7, completed_at = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		task.ID, task.Name, task.Description, task.DueDate,
		task.Priority, task.Status, tags, task.CompletedAt)
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
	query := `DELETE FROM tasks WHERE id = $1`

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

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*models.Task, error) {
	task := &models.Task{}
	var tags []byte
	var dueDate, completedAt sql.NullTime

	err := row.Scan(&task.ID, &task.Name, &task.Description, &dueDate,
		&task.Priority, &task.Status, &tags, &task.CreatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}
	if err := json.Unmarshal(tags, &task.Tags); err != nil {
		return nil, fmt.Errorf("tags decode error: %w", err)
	}

	return task, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("tags encode error: %w", err)
	}
	return b, nil
}
