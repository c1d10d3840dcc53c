package service

import (
	"context"
	"strings"
	"time"

	"github.com/campuslab/printbooth/internal/model"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/pkg/jwt"
	"github.com/campuslab/printbooth/internal/pkg/password"
	"github.com/campuslab/printbooth/internal/repo"
)

type AuthService struct {
	managers  repo.BoothManagerRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(managers repo.BoothManagerRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{managers: managers, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks a booth manager's credentials and issues a bearer token.
// Lookup misses and hash mismatches both collapse to ErrUnauthorized so
// callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.BoothManager, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	m, err := s.managers.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if err := password.Compare(m.PasswordHash, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if !m.IsActive {
		return nil, "", appErr.ErrForbidden
	}
	token, err := jwt.GenerateToken(m.ID.Hex(), m.Email, m.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	m.PasswordHash = ""
	return m, token, nil
}
