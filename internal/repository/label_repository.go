package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

type LabelRepository struct {
	db *gorm.DB
}

type LabelRepositoryInterface interface {
	Create(ctx context.Context, label *model.Label) error
	GetByID(ctx context.Context, id uint) (*model.Label, error)
	GetByName(ctx context.Context, name string) (*model.Label, error)
	GetAll(ctx context.Context) ([]model.Label, error)
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, id uint) error
}

var _ LabelRepositoryInterface = (*LabelRepository)(nil)

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *LabelRepository) GetByID(ctx context.Context, id uint) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

// GetByName supports the unique-name constraint and seed idempotence
func (r *LabelRepository) GetByName(ctx context.Context, name string) (*model.Label, error) {
	var label model.Label
	result := r.db.WithContext(ctx).First(&label, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, result.Error
	}
	return &label, nil
}

func (r *LabelRepository) GetAll(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	result := r.db.WithContext(ctx).Find(&labels)
	if result.Error != nil {
		return nil, result.Error
	}
	return labels, nil
}

func (r *LabelRepository) Update(ctx context.Context, label *model.Label) error {
	result := r.db.WithContext(ctx).Save(label)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabelNotFound
	}
	return nil
}

// Delete removes a label and its task associations
func (r *LabelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Label{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLabelNotFound
		}
		return nil
	})
}
