package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

type StatusRepository struct {
	db *gorm.DB
}

type StatusRepositoryInterface interface {
	Create(ctx context.Context, status *model.Status) error
	GetByID(ctx context.Context, id uint) (*model.Status, error)
	GetBySlug(ctx context.Context, slug string) (*model.Status, error)
	GetAll(ctx context.Context) ([]model.Status, error)
	Update(ctx context.Context, status *model.Status) error
	Delete(ctx context.Context, id uint) error
}

var _ StatusRepositoryInterface = (*StatusRepository)(nil)

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, status *model.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*model.Status, error) {
	var status model.Status
	result := r.db.WithContext(ctx).First(&status, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, result.Error
	}
	return &status, nil
}

// GetBySlug looks a status up by its unique slug, the external key tasks use
func (r *StatusRepository) GetBySlug(ctx context.Context, slug string) (*model.Status, error) {
	var status model.Status
	result := r.db.WithContext(ctx).First(&status, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, result.Error
	}
	return &status, nil
}

func (r *StatusRepository) GetAll(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	result := r.db.WithContext(ctx).Find(&statuses)
	if result.Error != nil {
		return nil, result.Error
	}
	return statuses, nil
}

func (r *StatusRepository) Update(ctx context.Context, status *model.Status) error {
	result := r.db.WithContext(ctx).Save(status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusNotFound
	}
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Status{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusNotFound
	}
	return nil
}
