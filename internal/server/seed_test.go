package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/server/repositories/clients"
	"github.com/barberbook/barberbook/internal/server/repositories/users"
	"github.com/barberbook/barberbook/internal/server/storage"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := users.NewSQLiteRepository(db)
	clientRepo := clients.NewSQLiteRepository(db)
	log := logging.NewStdoutLogger()

	require.NoError(t, Seed(ctx, db, userRepo, clientRepo, log))

	n, err := userRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = clientRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	admin, err := userRepo.GetByEmail(ctx, "admin@salonelegante.com")
	require.NoError(t, err)
	require.Equal(t, "Admin", admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(demoPassword)))

	// A second run leaves the database untouched.
	require.NoError(t, Seed(ctx, db, userRepo, clientRepo, log))

	n, err = userRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
