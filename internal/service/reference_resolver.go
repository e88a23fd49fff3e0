package service

import (
	"context"
	"errors"
	"strconv"

	"taskflow/internal/apperrors"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// ReferenceResolver turns foreign keys supplied in requests into entities,
// failing fast with a ReferenceNotFound that names the kind and key. Pure
// lookups, no side effects.
type ReferenceResolver struct {
	statusRepo repository.StatusRepositoryInterface
	labelRepo  repository.LabelRepositoryInterface
	userRepo   repository.UserRepositoryInterface
}

func NewReferenceResolver(
	statusRepo repository.StatusRepositoryInterface,
	labelRepo repository.LabelRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ReferenceResolver {
	return &ReferenceResolver{
		statusRepo: statusRepo,
		labelRepo:  labelRepo,
		userRepo:   userRepo,
	}
}

func (r *ReferenceResolver) ResolveStatus(ctx context.Context, slug string) (*model.Status, error) {
	status, err := r.statusRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return nil, apperrors.NewReferenceNotFound("status", slug)
		}
		return nil, err
	}
	return status, nil
}

func (r *ReferenceResolver) ResolveLabel(ctx context.Context, id uint) (*model.Label, error) {
	label, err := r.labelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLabelNotFound) {
			return nil, apperrors.NewReferenceNotFound("label", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return label, nil
}

// ResolveLabels resolves every id or fails on the first miss. An empty id
// list is an empty label set, not an error.
func (r *ReferenceResolver) ResolveLabels(ctx context.Context, ids []uint) ([]model.Label, error) {
	labels := make([]model.Label, 0, len(ids))
	for _, id := range ids {
		label, err := r.ResolveLabel(ctx, id)
		if err != nil {
			return nil, err
		}
		labels = append(labels, *label)
	}
	return labels, nil
}

func (r *ReferenceResolver) ResolveUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := r.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewReferenceNotFound("user", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return user, nil
}
