// Package kvstore provides the durable key-value storage the session cache
// and the transaction ledger persist through. The contract is a plain
// asynchronous get/set/remove over string keys and values; any durable
// backend satisfying it can be substituted.
package kvstore

import "context"

// Store is the persistence capability injected into the session cache and
// the ledger. Get reports absence through its second return value, not an
// error. All failures are *core.PersistenceError.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result bundles an opened store with its optional cleanup.
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}
