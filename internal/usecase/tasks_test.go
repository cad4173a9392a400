package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/domain/repository"
)

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]*models.Task, error) {
	out := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if filter.UserID != "" && task.UserID != filter.UserID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func newTestTaskService(t *testing.T) (*TaskService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	return NewTaskService(testLogger(t), newFakeTaskRepo(), users), users
}

func seedUser(t *testing.T, users *fakeUserRepo) *models.User {
	t.Helper()
	user := &models.User{ID: "3f0cbd1e-8a50-43bc-ae69-3d6d46ae3c26", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestTaskCreate(t *testing.T) {
	svc, users := newTestTaskService(t)
	user := seedUser(t, users)

	task, err := svc.Create(context.Background(), &models.TaskCreateRequest{
		Title:  "write report",
		UserID: user.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.False(t, task.Completed)
	require.Equal(t, user.ID, task.UserID)
}

func TestTaskCreateUnknownUser(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.Create(context.Background(), &models.TaskCreateRequest{
		Title:  "write report",
		UserID: "eb42e1cf-48f8-4de1-9f3a-54ec26a2f0da",
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskUpdateCompleted(t *testing.T) {
	svc, users := newTestTaskService(t)
	user := seedUser(t, users)
	ctx := context.Background()

	task, err := svc.Create(ctx, &models.TaskCreateRequest{Title: "write report", UserID: user.ID})
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)
}

func TestTaskListFilters(t *testing.T) {
	svc, users := newTestTaskService(t)
	user := seedUser(t, users)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.TaskCreateRequest{Title: "one", UserID: user.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.TaskCreateRequest{Title: "two", UserID: user.ID})
	require.NoError(t, err)

	completed := true
	_, err = svc.Update(ctx, first.ID, &models.TaskUpdateRequest{Completed: &completed})
	require.NoError(t, err)

	done, err := svc.List(ctx, repository.TaskFilter{UserID: user.ID, Completed: &completed, Limit: 100})
	require.NoError(t, err)
	require.Len(t, done, 1)
	require.Equal(t, "one", done[0].Title)

	all, err := svc.List(ctx, repository.TaskFilter{UserID: user.ID, Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestTaskDeleteNotFound(t *testing.T) {
	svc, _ := newTestTaskService(t)
	err := svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
