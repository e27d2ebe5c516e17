package usecase

import (
	"numberpool/internal/domain/identity"
	"numberpool/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (identity.Actor, identity.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (identity.Actor, identity.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Actor{}, "", err
	}

	role, err := identity.NewRole(claims.Role)
	if err != nil {
		return identity.Actor{}, "", err
	}

	return identity.NewActor(claims.UserID, claims.Name), role, nil
}
