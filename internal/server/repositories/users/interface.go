// Package users stores staff accounts.
package users

import (
	"context"
	"errors"

	"github.com/barberbook/barberbook/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Add(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Count(ctx context.Context) (int, error)
}
