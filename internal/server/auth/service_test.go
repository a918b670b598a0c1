package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/models"
	"github.com/barberbook/barberbook/internal/server/repositories/users"
)

type fakeUsers struct {
	byEmail map[string]models.User
}

func (f *fakeUsers) Add(_ context.Context, user models.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return models.User{}, users.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) Count(_ context.Context) (int, error) {
	return len(f.byEmail), nil
}

func testService(t *testing.T) (*Service, *fakeUsers) {
	t.Helper()
	repo := &fakeUsers{byEmail: map[string]models.User{}}

	hash, err := bcrypt.GenerateFromPassword([]byte("SuperAdmin123!"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.byEmail["admin@salonelegante.com"] = models.User{
		ID:           "u1",
		Email:        "admin@salonelegante.com",
		Name:         "Admin General",
		Role:         "Admin",
		PasswordHash: string(hash),
	}

	return NewService(repo, testSecret, time.Hour, logging.NewStdoutLogger()), repo
}

func TestService_Login(t *testing.T) {
	svc, _ := testService(t)

	token, user, err := svc.Login(context.Background(), "admin@salonelegante.com", "SuperAdmin123!")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Admin", user.Role)
}

func TestService_LoginWrongPassword(t *testing.T) {
	svc, _ := testService(t)

	_, _, err := svc.Login(context.Background(), "admin@salonelegante.com", "nope")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_LoginUnknownEmail(t *testing.T) {
	svc, _ := testService(t)

	_, _, err := svc.Login(context.Background(), "ghost@salonelegante.com", "SuperAdmin123!")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_Validate(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin@salonelegante.com", "SuperAdmin123!")
	require.NoError(t, err)

	user, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "admin@salonelegante.com", user.Email)
}

func TestService_ValidateDeletedUser(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin@salonelegante.com", "SuperAdmin123!")
	require.NoError(t, err)

	delete(repo.byEmail, "admin@salonelegante.com")

	_, err = svc.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateGarbage(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Validate(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}
