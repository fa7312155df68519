package usecase

import (
	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as the middleware sees it.
type Identity struct {
	UserID   uuid.UUID
	Role     user.Role
	Document user.Document
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	document, err := user.NewDocument(claims.Document)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:   claims.UserID,
		Role:     role,
		Document: document,
	}, nil
}
