// Package worker consumes transaction events and mirrors the referenced
// transactions into the configured spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gofinances/internal/amqp"
	"gofinances/internal/core"
	"gofinances/internal/ledger"
	applog "gofinances/internal/log"
)

// Appender is the destination of mirrored transactions.
type Appender interface {
	AppendTransaction(ctx context.Context, userID string, t core.Transaction) error
}

type MirrorWorker struct {
	ledger   *ledger.Ledger
	appender Appender
	timeout  time.Duration
}

func NewMirrorWorker(l *ledger.Ledger, appender Appender, timeout time.Duration) *MirrorWorker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MirrorWorker{ledger: l, appender: appender, timeout: timeout}
}

// HandleTransactionEvent looks the transaction up in the user's partition
// and appends it to the mirror. An event referencing a transaction that no
// longer exists (the user cleared the ledger) is dropped, not retried.
func (w *MirrorWorker) HandleTransactionEvent(event *amqp.TransactionEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	txs, err := w.ledger.List(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("list transactions for %s: %w", event.UserID, err)
	}

	for _, t := range txs {
		if t.ID == event.TransactionID {
			if err := w.appender.AppendTransaction(ctx, event.UserID, t); err != nil {
				return fmt.Errorf("mirror transaction %s: %w", t.ID, err)
			}
			return nil
		}
	}

	slog.WarnContext(ctx, "Transaction referenced by event no longer exists, dropping",
		applog.FieldUserID, event.UserID,
		applog.FieldTransactionID, event.TransactionID)
	return nil
}
