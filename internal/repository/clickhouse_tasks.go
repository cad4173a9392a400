package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"SolarAPI/internal/domain/models"
	domrepo "SolarAPI/internal/domain/repository"
	pkgch "SolarAPI/pkg/clickhouse"
	applogger "SolarAPI/pkg/logger"
)

// CHTaskRepository implements TaskRepository backed by ClickHouse.
type CHTaskRepository struct {
	db *sql.DB
	l  *applogger.Logger
}

func NewCHTaskRepository(ch *pkgch.Client, l *applogger.Logger) *CHTaskRepository {
	return &CHTaskRepository{db: ch.DB(), l: l}
}

func (r *CHTaskRepository) Create(ctx context.Context, task *models.Task) error {
	const q = `INSERT INTO tasks (id, title, description, completed, user_id, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, ?, ?, 0)`
	_, err := r.db.ExecContext(ctx, q,
		task.ID, task.Title, task.Description, boolToUInt8(task.Completed),
		task.UserID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		r.l.Error("clickhouse task insert error", applogger.String("id", task.ID), applogger.Error(err))
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *CHTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	const q = `
        SELECT id, title, description, completed, user_id, created_at, updated_at
        FROM tasks FINAL
        WHERE id = ? AND is_deleted = 0
    `
	var t models.Task
	var completed uint8
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&t.ID, &t.Title, &t.Description, &completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domrepo.ErrNotFound
	}
	if err != nil {
		r.l.Error("clickhouse task query error", applogger.String("id", id), applogger.Error(err))
		return nil, fmt.Errorf("get task: %w", err)
	}
	t.Completed = completed != 0
	return &t, nil
}

func (r *CHTaskRepository) List(ctx context.Context, filter domrepo.TaskFilter) ([]*models.Task, error) {
	conds := []string{"is_deleted = 0"}
	args := make([]interface{}, 0, 4)

	if filter.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, boolToUInt8(*filter.Completed))
	}
	args = append(args, filter.Limit, filter.Skip)

	q := fmt.Sprintf(`
        SELECT id, title, description, completed, user_id, created_at, updated_at
        FROM tasks FINAL
        WHERE %s
        ORDER BY created_at ASC, id ASC
        LIMIT ? OFFSET ?
    `, strings.Join(conds, " AND "))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Error("clickhouse tasks list query error", applogger.Error(err))
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Task, 0, filter.Limit)
	for rows.Next() {
		var t models.Task
		var completed uint8
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Completed = completed != 0
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *CHTaskRepository) Update(ctx context.Context, task *models.Task) error {
	const q = `INSERT INTO tasks (id, title, description, completed, user_id, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, ?, ?, 0)`
	_, err := r.db.ExecContext(ctx, q,
		task.ID, task.Title, task.Description, boolToUInt8(task.Completed),
		task.UserID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		r.l.Error("clickhouse task update error", applogger.String("id", task.ID), applogger.Error(err))
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *CHTaskRepository) Delete(ctx context.Context, id string) error {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	const q = `INSERT INTO tasks (id, title, description, completed, user_id, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`
	_, err = r.db.ExecContext(ctx, q,
		task.ID, task.Title, task.Description, boolToUInt8(task.Completed),
		task.UserID, task.CreatedAt, time.Now().UTC(),
	)
	if err != nil {
		r.l.Error("clickhouse task delete error", applogger.String("id", id), applogger.Error(err))
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
