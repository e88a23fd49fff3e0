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

type LabelServiceInterface interface {
	List(ctx context.Context) ([]dto.LabelResponse, error)
	Get(ctx context.Context, id uint) (dto.LabelResponse, error)
	Create(ctx context.Context, req dto.LabelCreateRequest) (dto.LabelResponse, error)
	Update(ctx context.Context, id uint, upd dto.LabelUpdateRequest) (dto.LabelResponse, error)
	Delete(ctx context.Context, id uint) error
}

type LabelService struct {
	repo repository.LabelRepositoryInterface
}

var _ LabelServiceInterface = (*LabelService)(nil)

func NewLabelService(repo repository.LabelRepositoryInterface) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) List(ctx context.Context) ([]dto.LabelResponse, error) {
	labels, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewLabelResponseList(labels), nil
}

func (s *LabelService) Get(ctx context.Context, id uint) (dto.LabelResponse, error) {
	label, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			return dto.LabelResponse{}, apperrors.NewEntityNotFound("label", id)
		}
		return dto.LabelResponse{}, err
	}
	return dto.NewLabelResponse(label), nil
}

func (s *LabelService) Create(ctx context.Context, req dto.LabelCreateRequest) (dto.LabelResponse, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrLabelNotFound) {
		return dto.LabelResponse{}, err
	}
	if existing != nil {
		return dto.LabelResponse{}, apperrors.NewValidation("label with name %q already exists", req.Name)
	}

	label := &model.Label{Name: req.Name}
	if err := s.repo.Create(ctx, label); err != nil {
		return dto.LabelResponse{}, err
	}
	return dto.NewLabelResponse(label), nil
}

func (s *LabelService) Update(ctx context.Context, id uint, upd dto.LabelUpdateRequest) (dto.LabelResponse, error) {
	if upd.Name.IsNull() || (upd.Name.IsSet() && strings.TrimSpace(upd.Name.Get()) == "") {
		return dto.LabelResponse{}, apperrors.NewValidation("name must not be blank")
	}

	label, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			return dto.LabelResponse{}, apperrors.NewEntityNotFound("label", id)
		}
		return dto.LabelResponse{}, err
	}

	if upd.Name.IsSet() {
		label.Name = upd.Name.Get()
	}

	if err := s.repo.Update(ctx, label); err != nil {
		return dto.LabelResponse{}, err
	}
	return dto.NewLabelResponse(label), nil
}

func (s *LabelService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrLabelNotFound) {
		return apperrors.NewEntityNotFound("label", id)
	}
	return err
}
