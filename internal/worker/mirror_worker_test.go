package worker

import (
	"context"
	"errors"
	"testing"

	"gofinances/internal/amqp"
	"gofinances/internal/core"
	"gofinances/internal/kvstore"
	"gofinances/internal/ledger"
)

type recordingAppender struct {
	rows []core.Transaction
	err  error
}

func (a *recordingAppender) AppendTransaction(_ context.Context, _ string, t core.Transaction) error {
	if a.err != nil {
		return a.err
	}
	a.rows = append(a.rows, t)
	return nil
}

func seedTransaction(t *testing.T, l *ledger.Ledger, userID string) core.Transaction {
	t.Helper()
	tx, err := core.NewTransaction("Mercado", "150.00", core.Negative, "food")
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}
	if err := l.Append(context.Background(), userID, tx); err != nil {
		t.Fatalf("Append: %v", err)
	}
	return tx
}

func TestHandleTransactionEventMirrorsTransaction(t *testing.T) {
	l := ledger.New(kvstore.NewMemoryStore())
	tx := seedTransaction(t, l, "user-1")

	appender := &recordingAppender{}
	w := NewMirrorWorker(l, appender, 0)

	err := w.HandleTransactionEvent(&amqp.TransactionEvent{
		UserID:        "user-1",
		TransactionID: tx.ID,
	})
	if err != nil {
		t.Fatalf("HandleTransactionEvent: %v", err)
	}
	if len(appender.rows) != 1 {
		t.Fatalf("expected 1 mirrored transaction, got %d", len(appender.rows))
	}
	if appender.rows[0].ID != tx.ID {
		t.Errorf("mirrored wrong transaction: %s", appender.rows[0].ID)
	}
}

func TestHandleTransactionEventMissingTransactionDropped(t *testing.T) {
	l := ledger.New(kvstore.NewMemoryStore())
	seedTransaction(t, l, "user-1")

	appender := &recordingAppender{}
	w := NewMirrorWorker(l, appender, 0)

	err := w.HandleTransactionEvent(&amqp.TransactionEvent{
		UserID:        "user-1",
		TransactionID: "gone",
	})
	if err != nil {
		t.Fatalf("expected missing transaction to be dropped, got %v", err)
	}
	if len(appender.rows) != 0 {
		t.Errorf("expected no mirrored transactions, got %d", len(appender.rows))
	}
}

func TestHandleTransactionEventAppenderFailure(t *testing.T) {
	l := ledger.New(kvstore.NewMemoryStore())
	tx := seedTransaction(t, l, "user-1")

	appender := &recordingAppender{err: errors.New("quota exceeded")}
	w := NewMirrorWorker(l, appender, 0)

	err := w.HandleTransactionEvent(&amqp.TransactionEvent{
		UserID:        "user-1",
		TransactionID: tx.ID,
	})
	if err == nil {
		t.Fatal("expected error when appender fails")
	}
}
