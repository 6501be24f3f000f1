// Package services orchestrates the session, the ledger and the aggregator
// behind the operations the presentation layer calls.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gofinances/internal/auth"
	"gofinances/internal/core"
	"gofinances/internal/ledger"
	"gofinances/internal/summary"
)

// EventPublisher announces appended transactions to interested consumers
// (the sheets mirror worker). Publishing is best-effort: the transaction is
// already saved when it runs.
type EventPublisher interface {
	PublishTransactionAppended(ctx context.Context, userID, transactionID string) error
}

// RegisterForm is the submitted register-form payload.
type RegisterForm struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// FinanceService ties the session cache and the ledger together for the
// current user.
type FinanceService struct {
	session *auth.Session
	ledger  *ledger.Ledger
	events  EventPublisher
}

func NewFinanceService(session *auth.Session, l *ledger.Ledger, events EventPublisher) *FinanceService {
	return &FinanceService{
		session: session,
		ledger:  l,
		events:  events,
	}
}

// RegisterTransaction validates the form, appends the resulting transaction
// to the signed-in user's ledger and publishes an event. The append must
// succeed; the publish may fail and is only logged.
func (s *FinanceService) RegisterTransaction(ctx context.Context, form RegisterForm) (core.Transaction, error) {
	user := s.session.User()
	if user.IsZero() {
		return core.Transaction{}, core.ErrNotAuthenticated
	}

	t, err := core.NewTransaction(form.Name, form.Amount, core.TransactionType(form.Type), form.Category)
	if err != nil {
		return core.Transaction{}, err
	}

	if err := s.ledger.Append(ctx, user.ID, t); err != nil {
		return core.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishTransactionAppended(ctx, user.ID, t.ID); err != nil {
			// Transaction is saved; the mirror catches up later.
			slog.ErrorContext(ctx, "Failed to publish transaction event",
				"transaction_id", t.ID, "error", err)
		}
	}

	return t, nil
}

// LoadSummary reads the current user's full ledger and aggregates it. The
// summary is derived fresh on every call.
func (s *FinanceService) LoadSummary(ctx context.Context) (summary.Summary, error) {
	user := s.session.User()
	if user.IsZero() {
		return summary.Summary{}, core.ErrNotAuthenticated
	}

	txs, err := s.ledger.List(ctx, user.ID)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("list transactions: %w", err)
	}

	return summary.Build(txs)
}

// ClearLedger bulk-clears the current user's transactions.
func (s *FinanceService) ClearLedger(ctx context.Context) error {
	user := s.session.User()
	if user.IsZero() {
		return core.ErrNotAuthenticated
	}
	return s.ledger.Clear(ctx, user.ID)
}

// Session exposes the session cache for the presentation layer.
func (s *FinanceService) Session() *auth.Session {
	return s.session
}

// Close releases the event publisher if it holds resources.
func (s *FinanceService) Close() error {
	if closer, ok := s.events.(io.Closer); ok && closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close event publisher: %w", err)
		}
	}
	return nil
}
