package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the encrypted session snapshot of the client.
// At most one snapshot exists at a time; saving replaces the previous one.
type SessionRepository interface {
	// Save stores the encrypted session blob, replacing any existing snapshot.
	Save(ctx context.Context, blob string) error

	// Load returns the stored encrypted session blob.
	// Returns [ErrSessionNotFound] when no snapshot has been saved.
	Load(ctx context.Context) (string, error)

	// Clear removes the stored snapshot if present.
	Clear(ctx context.Context) error
}

// VaultRepository persists encrypted vault snapshots keyed by user id.
type VaultRepository interface {
	// Save stores the encrypted vault blob for the given user, replacing any
	// existing snapshot.
	Save(ctx context.Context, userID, blob string) error

	// Load returns the stored encrypted vault blob for the given user.
	// Returns [ErrSnapshotNotFound] when the user has no snapshot.
	Load(ctx context.Context, userID string) (string, error)

	// Delete removes the vault snapshot for the given user if present.
	Delete(ctx context.Context, userID string) error
}
