// Package storage implements the local key-value namespace all state stores
// persist to. Values are opaque byte strings; structured values are
// JSON-encoded by the stores that own them. Each store owns a disjoint set
// of key prefixes.
package storage

import "context"

// Repository is a string-keyed blob store.
//
// Get returns (nil, nil) when the key is absent; stores rely on that to
// distinguish "never written" from an empty value.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// InTx runs fn against a repository bound to a single transaction, so a
	// multi-key update commits or rolls back as one unit.
	InTx(ctx context.Context, fn func(Repository) error) error
}
