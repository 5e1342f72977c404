// Package favorites persists the match ids a user has starred. Users are
// opaque identity strings; anonymous visitors share the local identity key.
package favorites

import "context"

// AnonymousUser is the identity key used before sign-in.
const AnonymousUser = "anonymous"

// Store is the persistence contract for favorite match ids.
type Store interface {
	Add(ctx context.Context, user, matchID string) error
	Remove(ctx context.Context, user, matchID string) error
	// List returns the user's favorite match ids in lexical order.
	List(ctx context.Context, user string) ([]string, error)
	Clear(ctx context.Context, user string) error
	IsFavorite(ctx context.Context, user, matchID string) (bool, error)
	Close() error
}
