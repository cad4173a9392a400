package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"SolarAPI/internal/domain/models"
	domrepo "SolarAPI/internal/domain/repository"
	pkgch "SolarAPI/pkg/clickhouse"
	applogger "SolarAPI/pkg/logger"
)

// CHUserRepository implements UserRepository backed by ClickHouse.
type CHUserRepository struct {
	db *sql.DB
	l  *applogger.Logger
}

func NewCHUserRepository(ch *pkgch.Client, l *applogger.Logger) *CHUserRepository {
	return &CHUserRepository{db: ch.DB(), l: l}
}

func (r *CHUserRepository) Create(ctx context.Context, user *models.User) error {
	const q = `INSERT INTO users (id, name, email, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, 0)`
	if _, err := r.db.ExecContext(ctx, q, user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt); err != nil {
		r.l.Error("clickhouse user insert error", applogger.String("id", user.ID), applogger.Error(err))
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *CHUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const q = `
        SELECT id, name, email, created_at, updated_at
        FROM users FINAL
        WHERE id = ? AND is_deleted = 0
    `
	return r.scanOne(ctx, q, id)
}

func (r *CHUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
        SELECT id, name, email, created_at, updated_at
        FROM users FINAL
        WHERE email = ? AND is_deleted = 0
        LIMIT 1
    `
	return r.scanOne(ctx, q, email)
}

func (r *CHUserRepository) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	const q = `
        SELECT id, name, email, created_at, updated_at
        FROM users FINAL
        WHERE is_deleted = 0
        ORDER BY created_at ASC, id ASC
        LIMIT ? OFFSET ?
    `
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		r.l.Error("clickhouse users list query error", applogger.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]*models.User, 0, limit)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *CHUserRepository) Update(ctx context.Context, user *models.User) error {
	// New version row; ReplacingMergeTree keeps the latest updated_at.
	const q = `INSERT INTO users (id, name, email, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, 0)`
	if _, err := r.db.ExecContext(ctx, q, user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt); err != nil {
		r.l.Error("clickhouse user update error", applogger.String("id", user.ID), applogger.Error(err))
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *CHUserRepository) Delete(ctx context.Context, id string) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	const q = `INSERT INTO users (id, name, email, created_at, updated_at, is_deleted) VALUES (?, ?, ?, ?, ?, 1)`
	if _, err := r.db.ExecContext(ctx, q, user.ID, user.Name, user.Email, user.CreatedAt, time.Now().UTC()); err != nil {
		r.l.Error("clickhouse user delete error", applogger.String("id", id), applogger.Error(err))
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *CHUserRepository) scanOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domrepo.ErrNotFound
	}
	if err != nil {
		r.l.Error("clickhouse user query error", applogger.Error(err))
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
