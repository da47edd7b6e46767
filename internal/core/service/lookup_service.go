package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// Cache keys for the taxonomy lists. Lists are cached whole; any mutation
// invalidates the list for that taxonomy.
const (
	cacheKeyStatuses   = "lookup:task_statuses"
	cacheKeyPriorities = "lookup:task_priorities"
	cacheKeyCategories = "lookup:task_categories"
)

// StatusService implements task-status CRUD with a read-through list cache.
type StatusService struct {
	repo   ports.StatusRepository
	cache  ports.LookupCache
	logger zerolog.Logger
}

func NewStatusService(repo ports.StatusRepository, cache ports.LookupCache, logger zerolog.Logger) *StatusService {
	return &StatusService{repo: repo, cache: cache, logger: logger}
}

func (s *StatusService) GetAll(ctx context.Context) ([]*domain.TaskStatus, error) {
	var cached []*domain.TaskStatus
	if s.cache != nil {
		if hit, err := s.cache.GetList(ctx, cacheKeyStatuses, &cached); err == nil && hit {
			return cached, nil
		}
	}
	statuses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, cacheKeyStatuses, statuses); err != nil {
			s.logger.Warn().Err(err).Msg("status list cache write failed")
		}
	}
	return statuses, nil
}

func (s *StatusService) GetByID(ctx context.Context, id string) (*domain.TaskStatus, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StatusService) GetByName(ctx context.Context, name string) (*domain.TaskStatus, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *StatusService) Create(ctx context.Context, input ports.StatusInput) (*domain.TaskStatus, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.TaskStatus{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("status_id", created.ID).Str("name", created.Name).Msg("task status created")
	return created, nil
}

func (s *StatusService) Update(ctx context.Context, id string, input ports.StatusInput) (*domain.TaskStatus, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Color = input.Color
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *StatusService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("status_id", id).Msg("task status deleted")
	return nil
}

func (s *StatusService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyStatuses); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKeyStatuses).Msg("cache invalidation failed")
	}
}

// PriorityService implements task-priority CRUD with a read-through list cache.
type PriorityService struct {
	repo   ports.PriorityRepository
	cache  ports.LookupCache
	logger zerolog.Logger
}

func NewPriorityService(repo ports.PriorityRepository, cache ports.LookupCache, logger zerolog.Logger) *PriorityService {
	return &PriorityService{repo: repo, cache: cache, logger: logger}
}

func (s *PriorityService) GetAll(ctx context.Context) ([]*domain.TaskPriority, error) {
	var cached []*domain.TaskPriority
	if s.cache != nil {
		if hit, err := s.cache.GetList(ctx, cacheKeyPriorities, &cached); err == nil && hit {
			return cached, nil
		}
	}
	priorities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, cacheKeyPriorities, priorities); err != nil {
			s.logger.Warn().Err(err).Msg("priority list cache write failed")
		}
	}
	return priorities, nil
}

func (s *PriorityService) GetByID(ctx context.Context, id string) (*domain.TaskPriority, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PriorityService) GetByName(ctx context.Context, name string) (*domain.TaskPriority, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *PriorityService) GetByValue(ctx context.Context, value int) (*domain.TaskPriority, error) {
	return s.repo.FindByValue(ctx, value)
}

func (s *PriorityService) Create(ctx context.Context, input ports.PriorityInput) (*domain.TaskPriority, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.TaskPriority{
		Name:         input.Name,
		Value:        input.Value,
		Description:  input.Description,
		Color:        input.Color,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("priority_id", created.ID).Str("name", created.Name).Msg("task priority created")
	return created, nil
}

func (s *PriorityService) Update(ctx context.Context, id string, input ports.PriorityInput) (*domain.TaskPriority, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.Value = input.Value
	existing.Description = input.Description
	existing.Color = input.Color
	existing.DisplayOrder = input.DisplayOrder
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *PriorityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("priority_id", id).Msg("task priority deleted")
	return nil
}

func (s *PriorityService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyPriorities); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKeyPriorities).Msg("cache invalidation failed")
	}
}

// CategoryService implements task-category CRUD with a read-through list cache.
type CategoryService struct {
	repo   ports.CategoryRepository
	cache  ports.LookupCache
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, cache ports.LookupCache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, logger: logger}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*domain.TaskCategory, error) {
	var cached []*domain.TaskCategory
	if s.cache != nil {
		if hit, err := s.cache.GetList(ctx, cacheKeyCategories, &cached); err == nil && hit {
			return cached, nil
		}
	}
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, cacheKeyCategories, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category list cache write failed")
		}
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.TaskCategory, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) GetByName(ctx context.Context, name string) (*domain.TaskCategory, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.TaskCategory, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.TaskCategory{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("task category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput) (*domain.TaskCategory, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Color = input.Color
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("category_id", id).Msg("task category deleted")
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyCategories); err != nil {
		s.logger.Warn().Err(err).Str("key", cacheKeyCategories).Msg("cache invalidation failed")
	}
}
