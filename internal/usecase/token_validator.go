package usecase

import (
	"context"
	"time"

	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type SessionCommands interface {
	Start(ctx context.Context) (*Session, error)
}

// Session is an anonymous browser session. Holds are keyed by its ID.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

type sessionServiceImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &sessionServiceImpl{jwtService: jwtService}
}

func NewSessionCommands(jwtService *jwt.Service) SessionCommands {
	return &sessionServiceImpl{jwtService: jwtService}
}

func (s *sessionServiceImpl) Start(_ context.Context) (*Session, error) {
	id := uuid.NewString()
	token, expiresAt, err := s.jwtService.GenerateToken(id)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "sign session token"), errs.ErrInternal)
	}
	return &Session{ID: id, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *sessionServiceImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}
