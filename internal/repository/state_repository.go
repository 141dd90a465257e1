package repository

import "context"

// StateRepository persists string-keyed, JSON-encoded values. It is the
// durable backing for hidden words and playback settings.
type StateRepository interface {
	// Get returns the stored value; found is false when the key was never set or was deleted.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
