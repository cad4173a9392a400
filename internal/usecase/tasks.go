package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/domain/repository"
	applogger "SolarAPI/pkg/logger"
)

// TaskService orchestrates task CRUD. Creation verifies the owning user.
type TaskService struct {
	logger *applogger.Logger
	tasks  repository.TaskRepository
	users  repository.UserRepository
}

func NewTaskService(logger *applogger.Logger, tasks repository.TaskRepository, users repository.UserRepository) *TaskService {
	return &TaskService{logger: logger, tasks: tasks, users: users}
}

// Create registers a new task for an existing user.
func (s *TaskService) Create(ctx context.Context, req *models.TaskCreateRequest) (*models.Task, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get fetches a single task.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// List returns tasks matching the filter.
func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]*models.Task, error) {
	return s.tasks.List(ctx, filter)
}

// Update applies a partial update to a task.
func (s *TaskService) Update(ctx context.Context, id string, req *models.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
