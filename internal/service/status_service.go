package service

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/apperrors"
	"taskflow/internal/dto"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type StatusServiceInterface interface {
	List(ctx context.Context) ([]dto.StatusResponse, error)
	Get(ctx context.Context, id uint) (dto.StatusResponse, error)
	Create(ctx context.Context, req dto.StatusCreateRequest) (dto.StatusResponse, error)
	Update(ctx context.Context, id uint, upd dto.StatusUpdateRequest) (dto.StatusResponse, error)
	Delete(ctx context.Context, id uint) error
}

type StatusService struct {
	repo repository.StatusRepositoryInterface
}

var _ StatusServiceInterface = (*StatusService)(nil)

func NewStatusService(repo repository.StatusRepositoryInterface) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) List(ctx context.Context) ([]dto.StatusResponse, error) {
	statuses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStatusResponseList(statuses), nil
}

func (s *StatusService) Get(ctx context.Context, id uint) (dto.StatusResponse, error) {
	status, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return dto.StatusResponse{}, apperrors.NewEntityNotFound("status", id)
		}
		return dto.StatusResponse{}, err
	}
	return dto.NewStatusResponse(status), nil
}

func (s *StatusService) Create(ctx context.Context, req dto.StatusCreateRequest) (dto.StatusResponse, error) {
	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil && !errors.Is(err, repository.ErrStatusNotFound) {
		return dto.StatusResponse{}, err
	}
	if existing != nil {
		return dto.StatusResponse{}, apperrors.NewValidation("status with slug %q already exists", req.Slug)
	}

	status := &model.Status{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.Create(ctx, status); err != nil {
		return dto.StatusResponse{}, err
	}
	return dto.NewStatusResponse(status), nil
}

func (s *StatusService) Update(ctx context.Context, id uint, upd dto.StatusUpdateRequest) (dto.StatusResponse, error) {
	if upd.Name.IsNull() || (upd.Name.IsSet() && strings.TrimSpace(upd.Name.Get()) == "") {
		return dto.StatusResponse{}, apperrors.NewValidation("name must not be blank")
	}
	if upd.Slug.IsNull() || (upd.Slug.IsSet() && strings.TrimSpace(upd.Slug.Get()) == "") {
		return dto.StatusResponse{}, apperrors.NewValidation("slug must not be blank")
	}

	status, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return dto.StatusResponse{}, apperrors.NewEntityNotFound("status", id)
		}
		return dto.StatusResponse{}, err
	}

	if upd.Name.IsSet() {
		status.Name = upd.Name.Get()
	}
	if upd.Slug.IsSet() {
		status.Slug = upd.Slug.Get()
	}

	if err := s.repo.Update(ctx, status); err != nil {
		return dto.StatusResponse{}, err
	}
	return dto.NewStatusResponse(status), nil
}

func (s *StatusService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrStatusNotFound) {
		return apperrors.NewEntityNotFound("status", id)
	}
	return err
}
