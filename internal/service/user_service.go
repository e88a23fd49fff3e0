package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/apperrors"
	"taskflow/internal/dto"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type UserServiceInterface interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	Create(ctx context.Context, req dto.UserCreateRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id uint, upd dto.UserUpdateRequest, principalEmail string) (dto.UserResponse, error)
	Delete(ctx context.Context, id uint, principalEmail string) error
}

type UserService struct {
	repo repository.UserRepositoryInterface
}

var _ UserServiceInterface = (*UserService)(nil)

func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseList(users), nil
}

func (s *UserService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return dto.UserResponse{}, apperrors.NewEntityNotFound("user", id)
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if existing != nil {
		return dto.UserResponse{}, apperrors.NewValidation("user with email %q already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user := &model.User{
		Email:          email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// Update is ownership-gated: only the user's own identity may change the
// record. The gate runs before any field is touched.
func (s *UserService) Update(ctx context.Context, id uint, upd dto.UserUpdateRequest, principalEmail string) (dto.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return dto.UserResponse{}, apperrors.NewEntityNotFound("user", id)
		}
		return dto.UserResponse{}, err
	}

	if !IsOwner(user.Email, principalEmail) {
		return dto.UserResponse{}, apperrors.ErrForbidden
	}

	if upd.Email.IsNull() || (upd.Email.IsSet() && strings.TrimSpace(upd.Email.Get()) == "") {
		return dto.UserResponse{}, apperrors.NewValidation("email must not be blank")
	}
	if upd.Password.IsNull() || (upd.Password.IsSet() && upd.Password.Get() == "") {
		return dto.UserResponse{}, apperrors.NewValidation("password must not be blank")
	}

	if upd.Email.IsSet() {
		user.Email = strings.ToLower(strings.TrimSpace(upd.Email.Get()))
	}
	if upd.FirstName.IsSet() {
		user.FirstName = upd.FirstName.Get()
	} else if upd.FirstName.IsNull() {
		user.FirstName = ""
	}
	if upd.LastName.IsSet() {
		user.LastName = upd.LastName.Get()
	} else if upd.LastName.IsNull() {
		user.LastName = ""
	}
	if upd.Password.IsSet() {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password.Get()), bcrypt.DefaultCost)
		if err != nil {
			return dto.UserResponse{}, err
		}
		user.HashedPassword = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete is ownership-gated like Update.
func (s *UserService) Delete(ctx context.Context, id uint, principalEmail string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.NewEntityNotFound("user", id)
		}
		return err
	}

	if !IsOwner(user.Email, principalEmail) {
		return apperrors.ErrForbidden
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return apperrors.NewEntityNotFound("user", id)
	}
	return err
}
