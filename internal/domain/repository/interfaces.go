package repository

import (
	"context"
	"errors"

	"SolarAPI/internal/domain/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrEmailTaken is returned when a user email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	UserID    string
	Completed *bool
	Skip      int
	Limit     int
}

// TaskRepository persists tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

// SalesStore persists raw sales line items ingested from the bus.
type SalesStore interface {
	StoreBatch(ctx context.Context, items []models.SalesRecord) error
}

// EventPublisher publishes analysis events to the bus.
type EventPublisher interface {
	PublishAnalysis(ctx context.Context, event models.AnalysisEvent) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordAnalysis(operation string)
	RecordError(operation, kind string)
	RecordIngested(count int)
	RecordLatency(operation string, seconds float64)
}
