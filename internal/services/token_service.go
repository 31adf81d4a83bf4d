package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ClaimUserID is the claim that carries the authenticated user's id.
const ClaimUserID = "us_id"

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
)

// TokenService issues and verifies HS256 bearer tokens signed with a process-wide secret.
// Tokens cannot be revoked: they stay valid until they expire.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs claims together with an expiry ttl from now.
func (s *TokenService) Issue(claims map[string]interface{}, ttl time.Duration) (string, error) {
	now := s.now()
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses tokenString and returns its claims. The error is one of
// ErrTokenExpired, ErrTokenInvalid or ErrTokenMalformed.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			switch {
			case validationErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
			case validationErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
			case validationErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
