package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/domain/repository"
	"SolarAPI/pkg/cache"
	applogger "SolarAPI/pkg/logger"
)

// UserService orchestrates user CRUD over the repository, with a read-through
// cache on single-user lookups.
type UserService struct {
	logger *applogger.Logger
	repo   repository.UserRepository
	cache  cache.Service
	ttl    time.Duration
}

func NewUserService(logger *applogger.Logger, repo repository.UserRepository, cacheSvc cache.Service, ttl time.Duration) *UserService {
	return &UserService{logger: logger, repo: repo, cache: cacheSvc, ttl: ttl}
}

func userCacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// Create registers a new user. The email must not already be taken.
func (s *UserService) Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrEmailTaken
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get fetches a single user, serving from cache when possible.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if s.cache != nil {
		var cached models.User
		if err := s.cache.Get(ctx, userCacheKey(id), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("user cache read failed", applogger.Error(err))
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userCacheKey(id), user, s.ttl); err != nil {
			s.logger.Warn("user cache write failed", applogger.Error(err))
		}
	}
	return user, nil
}

// List returns a page of users.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update to a user.
func (s *UserService) Update(ctx context.Context, id string, req *models.UserUpdateRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, repository.ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userCacheKey(id)); err != nil {
		s.logger.Warn("user cache invalidation failed", applogger.Error(err))
	}
}
