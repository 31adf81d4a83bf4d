package services_test

import (
	"context"
	"testing"
	"time"

	"toko-api/internal/apperror"
	"toko-api/internal/models"
	"toko-api/internal/repositories"
	"toko-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) (*services.AuthService, *services.TokenService) {
	tokens := services.NewTokenService(testJWTSecret)
	return services.NewAuthService(repo, tokens, time.Hour), tokens
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService, tokens := newAuthService(mockRepo)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "test@example.com", Password: string(hashedPassword)}

	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil)
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repositories.ErrNotFound)

	// Test successful login
	result, err := authService.Login(ctx, services.LoginRequest{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims[services.ClaimUserID])

	// Test wrong password
	_, err = authService.Login(ctx, services.LoginRequest{Email: "test@example.com", Password: "wrongpassword"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "user or password incorrect")

	// Test unknown email yields the same error
	_, err = authService.Login(ctx, services.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.EqualError(t, err, "user or password incorrect")

	// Test missing fields
	_, err = authService.Login(ctx, services.LoginRequest{Email: "test@example.com"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.EqualError(t, err, "email and password are required")

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Verify(t *testing.T) {
	authService, tokens := newAuthService(new(MockUserRepository))

	_, err := authService.Verify("")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	assert.EqualError(t, err, "token not found")

	_, err = authService.Verify("garbage")
	assert.EqualError(t, err, "token is invalid")

	expired, err := tokens.Issue(map[string]interface{}{services.ClaimUserID: "user-1"}, -time.Second)
	require.NoError(t, err)
	_, err = authService.Verify(expired)
	assert.EqualError(t, err, "token has expired")

	valid, err := tokens.Issue(map[string]interface{}{services.ClaimUserID: "user-1"}, time.Minute)
	require.NoError(t, err)
	claims, err := authService.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims[services.ClaimUserID])
}
