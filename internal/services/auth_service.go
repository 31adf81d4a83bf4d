package services

import (
	"context"
	"errors"
	"time"

	"toko-api/internal/apperror"
	"toko-api/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "user or password incorrect"

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string `json:"token"`
}

// AuthService handles business logic for authentication.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Login authenticates a user by email and password and returns a token keyed on the user's id.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.Validation(msgInvalidCredentials)
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Validation(msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(map[string]interface{}{ClaimUserID: user.ID}, s.tokenTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &LoginResult{Token: token}, nil
}

// Verify decodes a bearer token and returns its claims.
func (s *AuthService) Verify(token string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, apperror.Unauthorized("token not found")
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, TokenError(err)
	}
	return claims, nil
}

// TokenError maps a token verification failure to an Unauthorized error with a cause-specific message.
func TokenError(err error) error {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return apperror.Unauthorized("token has expired")
	default:
		return apperror.Unauthorized("token is invalid")
	}
}
