package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

const msgUserNotFound = "user not found"

// UserRequest is the body of both user create and user update.
// Update validates it in full, so every field is required there as well.
type UserRequest struct {
	Name     string `json:"us_name" validate:"required,max=50"`
	Email    string `json:"us_email" validate:"required,email"`
	Password string `json:"us_password" validate:"required,max=72"`
	Phone    string `json:"us_phone_number" validate:"required,min=10,max=13"`
	Address  string `json:"us_address" validate:"required"`
}

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser validates req, hashes the password and stores the user.
func (s *UserService) CreateUser(ctx context.Context, req UserRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, userWriteError(err)
	}
	return user, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgUserNotFound)
	}
	return user, nil
}

// UpdateUser replaces every field of the user. Unlike categories and
// products, a payload carrying only some fields is rejected.
func (s *UserService) UpdateUser(ctx context.Context, id string, req UserRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, msgUserNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Email != user.Email {
		if err := s.ensureEmailFree(ctx, req.Email, user.ID); err != nil {
			return nil, err
		}
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = hashed
	user.Phone = req.Phone
	user.Address = req.Address

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, userWriteError(err)
	}
	return user, nil
}

// DeleteUser deletes a user by its ID.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return repoError(err, msgUserNotFound)
	}
	return nil
}

// DeleteUsers deletes every user in req.IDs. Missing ids fail the call as a
// whole, but the users that did exist are deleted anyway.
func (s *UserService) DeleteUsers(ctx context.Context, req BulkDeleteRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	notFound, err := deleteEach(ctx, req.IDs, s.repo.Delete)
	if err != nil {
		return apperror.Internal(err)
	}
	if len(notFound) > 0 {
		return apperror.NotFoundf("users with the following ids were not found: %s", strings.Join(notFound, ", "))
	}
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email, ownerID string) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return apperror.Internal(err)
	case existing.ID != ownerID:
		return apperror.Validationf("email '%s' already registered", email)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}
	return string(hashed), nil
}

func userWriteError(err error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperror.Validation("email already registered")
	}
	return apperror.Internal(err)
}
