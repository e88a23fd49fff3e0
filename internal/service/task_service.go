package service

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/apperrors"
	"taskflow/internal/dto"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/specification"
)

type TaskServiceInterface interface {
	List(ctx context.Context, filter dto.TaskFilter) ([]dto.TaskResponse, error)
	Get(ctx context.Context, id uint) (dto.TaskResponse, error)
	Create(ctx context.Context, req dto.TaskCreateRequest) (dto.TaskResponse, error)
	Update(ctx context.Context, id uint, upd dto.TaskUpdateRequest) (dto.TaskResponse, error)
	Delete(ctx context.Context, id uint) error
}

// TaskService orchestrates task operations: filter composition for lists,
// reference resolution and partial-update merging for writes.
type TaskService struct {
	repo     repository.TaskRepositoryInterface
	resolver *ReferenceResolver
}

var _ TaskServiceInterface = (*TaskService)(nil)

func NewTaskService(repo repository.TaskRepositoryInterface, resolver *ReferenceResolver) *TaskService {
	return &TaskService{repo: repo, resolver: resolver}
}

func (s *TaskService) List(ctx context.Context, filter dto.TaskFilter) ([]dto.TaskResponse, error) {
	query := specification.BuildTaskQuery(filter)
	tasks, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponseList(tasks), nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (dto.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return dto.TaskResponse{}, apperrors.NewEntityNotFound("task", id)
		}
		return dto.TaskResponse{}, err
	}
	return dto.NewTaskResponse(task), nil
}

// Create resolves every reference before anything is written; a bad slug,
// label id or assignee id means no task is persisted.
func (s *TaskService) Create(ctx context.Context, req dto.TaskCreateRequest) (dto.TaskResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.TaskResponse{}, apperrors.NewValidation("title must not be blank")
	}
	if strings.TrimSpace(req.Status) == "" {
		return dto.TaskResponse{}, apperrors.NewValidation("status is required")
	}

	status, err := s.resolver.ResolveStatus(ctx, req.Status)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	var assignee *model.User
	if req.AssigneeID != nil {
		assignee, err = s.resolver.ResolveUser(ctx, *req.AssigneeID)
		if err != nil {
			return dto.TaskResponse{}, err
		}
	}

	labels, err := s.resolver.ResolveLabels(ctx, req.TaskLabelIDs)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Content,
		Index:       req.Index,
		StatusID:    status.ID,
		Status:      *status,
		Labels:      labels,
	}
	if assignee != nil {
		task.AssigneeID = &assignee.ID
		task.Assignee = assignee
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return dto.TaskResponse{}, err
	}
	return dto.NewTaskResponse(task), nil
}

// Update fetches, merges and persists. Concurrent updates to the same task
// are last-write-wins; there is no version token on tasks.
func (s *TaskService) Update(ctx context.Context, id uint, upd dto.TaskUpdateRequest) (dto.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return dto.TaskResponse{}, apperrors.NewEntityNotFound("task", id)
		}
		return dto.TaskResponse{}, err
	}

	if err := ApplyTaskUpdate(ctx, s.resolver, task, upd); err != nil {
		return dto.TaskResponse{}, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return dto.TaskResponse{}, apperrors.NewEntityNotFound("task", id)
		}
		return dto.TaskResponse{}, err
	}
	return dto.NewTaskResponse(task), nil
}

// Delete of an id that does not exist is an EntityNotFound, not a silent
// no-op.
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return apperrors.NewEntityNotFound("task", id)
	}
	return err
}
