package usecase

import (
	"errors"

	"voltbite/internal/pkg/jwt"
)

var ErrUnauthorized = errors.New("invalid or expired token")

// TokenValidator resolves bearer tokens issued by the auth service into
// claims. Token issuance lives with that service; only validation happens
// here.
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtService}
}

func (t *tokenValidatorImpl) Validate(token string) (*jwt.Claims, error) {
	claims, err := t.jwt.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
