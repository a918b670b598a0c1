// Package tokens persists the session token between client runs so a new
// process can attempt to restore the previous session. The token is opaque
// to the rest of the client; only the API layer reads it.
package tokens

import "context"

type Repository interface {
	// Load returns the saved token, or "" when none is saved.
	Load(ctx context.Context) (string, error)

	// Save stores the token, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Clear removes the saved token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
