package amqp

import (
	"encoding/json"
	"time"
)

// TransactionEvent announces that a transaction was appended to a user's
// ledger. It carries only identifiers; consumers fetch what they need.
type TransactionEvent struct {
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionEvent(userID, transactionID string) *TransactionEvent {
	return &TransactionEvent{
		UserID:        userID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
