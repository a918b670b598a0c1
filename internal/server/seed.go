package server

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberbook/barberbook/internal/dbx"
	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/models"
	"github.com/barberbook/barberbook/internal/server/repositories/clients"
	"github.com/barberbook/barberbook/internal/server/repositories/users"
)

const demoPassword = "SuperAdmin123!"

var demoUsers = []models.User{
	{Email: "admin@salonelegante.com", Name: "Admin General", Role: "Admin"},
	{Email: "maria@salonelegante.com", Name: "María Rodríguez", Role: "Recepcionista"},
	{Email: "carlos@salonelegante.com", Name: "Carlos López", Role: "Estilista"},
}

var demoClients = []models.Client{
	{Name: "Ana Gómez", Email: "ana.gomez@example.com", Mobile: "600111222"},
	{Name: "Bruno Díaz", Email: "bruno.diaz@example.com", Mobile: "600333444"},
	{Name: "Carla Ruiz", Email: "carla.ruiz@example.com"},
	{Name: "Diego Fernández", Email: "diego.fernandez@example.com", Mobile: "600555666"},
}

// Seed inserts the demo accounts and customer records on first run. A
// database that already has users is left untouched.
func Seed(ctx context.Context, db *sql.DB, userRepo users.Repository, clientRepo clients.Repository, log logging.Logger) error {
	n, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txUsers := users.NewSQLiteRepository(tx)
		for _, user := range demoUsers {
			user.ID = uuid.NewString()
			user.PasswordHash = string(hash)
			if err := txUsers.Add(ctx, user); err != nil {
				return err
			}
		}

		txClients := clients.NewSQLiteRepository(tx)
		for _, client := range demoClients {
			client.ID = uuid.NewString()
			if err := txClients.Add(ctx, client); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "seeded demo data", "users", len(demoUsers), "clients", len(demoClients))
	return nil
}
