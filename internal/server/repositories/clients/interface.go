// Package clients stores the shop's customer records.
package clients

import (
	"context"
	"errors"

	"github.com/barberbook/barberbook/internal/models"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	Add(ctx context.Context, client models.Client) error
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client models.Client) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
