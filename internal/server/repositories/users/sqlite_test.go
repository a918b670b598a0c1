package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:users?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id            TEXT PRIMARY KEY,
  email         TEXT NOT NULL UNIQUE,
  name          TEXT NOT NULL,
  role          TEXT NOT NULL,
  password_hash TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_AddAndGetByEmail(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	user := models.User{
		ID:           "u1",
		Email:        "admin@salonelegante.com",
		Name:         "Admin General",
		Role:         "Admin",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Add(ctx, user))

	got, err := repo.GetByEmail(ctx, "admin@salonelegante.com")
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestSQLiteRepository_GetByEmailMissing(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	_, err := repo.GetByEmail(context.Background(), "nobody@salonelegante.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_DuplicateEmail(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.User{ID: "u1", Email: "a@b.c", Name: "A", Role: "Admin", PasswordHash: "h"}))
	require.Error(t, repo.Add(ctx, models.User{ID: "u2", Email: "a@b.c", Name: "B", Role: "Admin", PasswordHash: "h"}))
}

func TestSQLiteRepository_Count(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.NoError(t, repo.Add(ctx, models.User{ID: "u1", Email: "a@b.c", Name: "A", Role: "Admin", PasswordHash: "h"}))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
