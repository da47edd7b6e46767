package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pacdac/task-management-app/internal/core/domain"
	"github.com/Pacdac/task-management-app/internal/core/ports"
)

// TaskService implements task CRUD on top of the task repository, checking
// referenced users, statuses and categories for existence on writes and
// denormalizing their names on reads.
type TaskService struct {
	tasks      ports.TaskRepository
	users      ports.UserRepository
	statuses   ports.StatusRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	users ports.UserRepository,
	statuses ports.StatusRepository,
	categories ports.CategoryRepository,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		users:      users,
		statuses:   statuses,
		categories: categories,
		logger:     logger,
	}
}

func (s *TaskService) GetAll(ctx context.Context) ([]*ports.TaskDetail, error) {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, tasks), nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*ports.TaskDetail, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, task), nil
}

func (s *TaskService) GetByUserID(ctx context.Context, userID string) ([]*ports.TaskDetail, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, tasks), nil
}

func (s *TaskService) Create(ctx context.Context, input ports.TaskInput) (*ports.TaskDetail, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		UserID:      input.UserID,
		StatusID:    input.StatusID,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().Str("task_id", created.ID).Str("title", created.Title).Msg("task created")
	return s.enrich(ctx, created), nil
}

func (s *TaskService) Update(ctx context.Context, id string, input ports.TaskInput) (*ports.TaskDetail, error) {
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.DueDate = input.DueDate
	existing.Priority = input.Priority
	existing.UserID = input.UserID
	existing.StatusID = input.StatusID
	existing.CategoryID = input.CategoryID
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.tasks.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", updated.ID).Msg("task updated")
	return s.enrich(ctx, updated), nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) SearchByTitle(ctx context.Context, keyword string) ([]*ports.TaskDetail, error) {
	tasks, err := s.tasks.SearchByTitle(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, tasks), nil
}

func (s *TaskService) GetOverdue(ctx context.Context, userID string) ([]*ports.TaskDetail, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	// "Overdue" means due strictly before today, date precision.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tasks, err := s.tasks.FindOverdue(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, tasks), nil
}

// checkReferences rejects writes that point at missing records. Empty ids
// are allowed: a task may be unassigned or unclassified.
func (s *TaskService) checkReferences(ctx context.Context, input ports.TaskInput) error {
	if input.UserID != "" {
		if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
			return err
		}
	}
	if input.StatusID != "" {
		if _, err := s.statuses.FindByID(ctx, input.StatusID); err != nil {
			return err
		}
	}
	if input.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

// enrich resolves reference names for a single task. A dangling reference is
// tolerated: the id is kept, the name stays empty.
func (s *TaskService) enrich(ctx context.Context, task *domain.Task) *ports.TaskDetail {
	detail := &ports.TaskDetail{Task: *task}
	if task.UserID != "" {
		if user, err := s.users.FindByID(ctx, task.UserID); err == nil {
			detail.Username = user.Username
		}
	}
	if task.StatusID != "" {
		if status, err := s.statuses.FindByID(ctx, task.StatusID); err == nil {
			detail.StatusName = status.Name
		}
	}
	if task.CategoryID != "" {
		if category, err := s.categories.FindByID(ctx, task.CategoryID); err == nil {
			detail.CategoryName = category.Name
		}
	}
	return detail
}

func (s *TaskService) enrichAll(ctx context.Context, tasks []*domain.Task) []*ports.TaskDetail {
	details := make([]*ports.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		details = append(details, s.enrich(ctx, t))
	}
	return details
}
