package services_test

import (
	"context"
	"testing"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"
	"toko-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validUserRequest() services.UserRequest {
	return services.UserRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "secret123",
		Phone:    "081234567890",
		Address:  "Jl. Merdeka 1",
	}
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	mockRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := userService.CreateUser(ctx, validUserRequest())
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserValidation(t *testing.T) {
	ctx := context.Background()
	userService := services.NewUserService(new(MockUserRepository))

	tests := []struct {
		name    string
		mutate  func(*services.UserRequest)
		message string
	}{
		{"missing name", func(r *services.UserRequest) { r.Name = "" }, "name is required, must be text and at most 50 characters"},
		{"bad email", func(r *services.UserRequest) { r.Email = "budi" }, "email is required and must be a valid email"},
		{"short phone", func(r *services.UserRequest) { r.Phone = "0812" }, "phone number is required and must be 10 to 13 characters"},
		{"missing address", func(r *services.UserRequest) { r.Address = "" }, "address is required and must be text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserRequest()
			tt.mutate(&req)
			_, err := userService.CreateUser(ctx, req)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	mockRepo.On("GetByEmail", ctx, "budi@example.com").Return(&models.User{ID: "other"}, nil).Once()

	_, err := userService.CreateUser(ctx, validUserRequest())
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	existing := &models.User{ID: "user-1", Name: "Budi", Email: "budi@example.com"}
	mockRepo.On("GetByID", ctx, "user-1").Return(existing, nil)
	mockRepo.On("GetByID", ctx, "missing").Return(nil, repositories.ErrNotFound)

	// A partial payload is rejected.
	_, err := userService.UpdateUser(ctx, "user-1", services.UserRequest{Name: "Andi"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	// A missing user is reported before the payload is looked at.
	_, err = userService.UpdateUser(ctx, "missing", services.UserRequest{})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "user not found")

	mockRepo.On("Update", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()
	req := validUserRequest()
	req.Name = "Andi"
	user, err := userService.UpdateUser(ctx, "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Andi", user.Name)
	assert.Equal(t, "user-1", user.ID)

	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	mockRepo.On("Delete", ctx, "user-1").Return(nil).Once()
	mockRepo.On("Delete", ctx, "missing").Return(repositories.ErrNotFound).Once()

	assert.NoError(t, userService.DeleteUser(ctx, "user-1"))
	err := userService.DeleteUser(ctx, "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUsers(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "a").Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, "x").Return(repositories.ErrNotFound).Once()
	mockRepo.On("Delete", mock.Anything, "b").Return(nil).Once()

	err := userService.DeleteUsers(ctx, services.BulkDeleteRequest{IDs: []string{"a", "x", "b"}})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "users with the following ids were not found: x")

	// The existing users were deleted anyway.
	mockRepo.AssertExpectations(t)

	err = userService.DeleteUsers(ctx, services.BulkDeleteRequest{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "ids are required and must be a non-empty array")
}
