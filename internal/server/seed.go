package server

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

var defaultStatuses = []model.Status{
	{Name: "Draft", Slug: "draft"},
	{Name: "To Review", Slug: "to_review"},
	{Name: "To Be Fixed", Slug: "to_be_fixed"},
	{Name: "To Publish", Slug: "to_publish"},
	{Name: "Published", Slug: "published"},
}

var defaultLabels = []string{"feature", "bug"}

const (
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "qwerty"
)

// Seed creates the default statuses, labels and admin user. It is
// idempotent: entities already present are left alone.
func Seed(
	ctx context.Context,
	statusRepo repository.StatusRepositoryInterface,
	labelRepo repository.LabelRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) error {
	for _, status := range defaultStatuses {
		_, err := statusRepo.GetBySlug(ctx, status.Slug)
		if errors.Is(err, repository.ErrStatusNotFound) {
			s := status
			if err := statusRepo.Create(ctx, &s); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	for _, name := range defaultLabels {
		_, err := labelRepo.GetByName(ctx, name)
		if errors.Is(err, repository.ErrLabelNotFound) {
			if err := labelRepo.Create(ctx, &model.Label{Name: name}); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	admin, err := userRepo.FindByEmail(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := userRepo.Create(ctx, &model.User{
			Email:          defaultAdminEmail,
			HashedPassword: string(hash),
		}); err != nil {
			return err
		}
	}

	log.Println("Seeded default statuses, labels and admin user")
	return nil
}
