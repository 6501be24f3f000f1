// Package ledger owns the per-user transaction lists. Each user's
// transactions live under their own partition key, so switching users
// exposes a disjoint set without migration.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"gofinances/internal/core"
	"gofinances/internal/kvstore"
)

const partitionKeyPrefix = "@gofinances:transactions_user:"

// PartitionKey returns the store key holding a user's transaction list.
func PartitionKey(userID string) string {
	return partitionKeyPrefix + userID
}

// Ledger appends and lists transactions over the key-value store. A whole
// partition is read, modified and written back on every append; the mutex
// serializes appends within this process so none is lost. Writers in other
// processes still race (last writer wins).
type Ledger struct {
	store kvstore.Store
	mu    sync.Mutex
}

func New(store kvstore.Store) *Ledger {
	return &Ledger{store: store}
}

// Append adds an already-validated transaction to the user's partition.
// If the write fails the partition is unchanged; read-after-write is the
// only consistency guarantee.
func (l *Ledger) Append(ctx context.Context, userID string, t core.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	txs, err := l.read(ctx, userID)
	if err != nil {
		return err
	}
	txs = append(txs, t)

	if err := l.write(ctx, userID, txs); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction appended",
		"user_id", userID,
		"transaction_id", t.ID,
		"type", string(t.Type),
		"category", t.Category)
	return nil
}

// List returns the user's transactions in stored (insertion) order. A
// never-written partition yields an empty slice, not an error.
func (l *Ledger) List(ctx context.Context, userID string) ([]core.Transaction, error) {
	return l.read(ctx, userID)
}

// Clear removes the user's whole partition. This is the only deletion the
// ledger supports; individual transactions are never mutated.
func (l *Ledger) Clear(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Remove(ctx, PartitionKey(userID)); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Ledger cleared", "user_id", userID)
	return nil
}

func (l *Ledger) read(ctx context.Context, userID string) ([]core.Transaction, error) {
	key := PartitionKey(userID)
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []core.Transaction{}, nil
	}

	var txs []core.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil, &core.PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return txs, nil
}

func (l *Ledger) write(ctx context.Context, userID string, txs []core.Transaction) error {
	key := PartitionKey(userID)
	raw, err := json.Marshal(txs)
	if err != nil {
		return &core.PersistenceError{Op: "encode", Key: key, Err: err}
	}
	return l.store.Set(ctx, key, string(raw))
}
