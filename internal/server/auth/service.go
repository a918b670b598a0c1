package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/models"
	"github.com/barberbook/barberbook/internal/server/repositories/users"
)

var ErrBadCredentials = errors.New("bad credentials")

// Service checks passwords against stored bcrypt hashes and exchanges them
// for signed tokens.
type Service struct {
	users  users.Repository
	secret []byte
	ttl    time.Duration
	log    logging.Logger
}

func NewService(repo users.Repository, secret []byte, ttl time.Duration, log logging.Logger) *Service {
	return &Service{users: repo, secret: secret, ttl: ttl, log: log}
}

// Login verifies the email/password pair and returns a fresh token with the
// matching account. A wrong email and a wrong password both come back as
// ErrBadCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		s.log.Info(ctx, "login rejected", "email", email)
		return "", models.User{}, ErrBadCredentials
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Info(ctx, "login rejected", "email", email)
		return "", models.User{}, ErrBadCredentials
	}

	token, err := GenerateToken(user.Email, user.Name, user.Role, s.secret, s.ttl)
	if err != nil {
		return "", models.User{}, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info(ctx, "login accepted", "email", email, "role", user.Role)
	return token, user, nil
}

// Validate parses the token and re-reads the account it names, so a deleted
// user's token stops working before it expires.
func (s *Service) Validate(ctx context.Context, token string) (models.User, error) {
	claims, err := ParseToken(token, s.secret)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if errors.Is(err, users.ErrNotFound) {
		return models.User{}, ErrInvalidToken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("validate token: %w", err)
	}
	return user, nil
}
