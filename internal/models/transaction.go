package models

import "time"

// TransactionType mirrors domain.TransactionType at the database boundary.
type TransactionType string

const (
	Inflow  TransactionType = "inflow"
	Outflow TransactionType = "outflow"
)

// Transaction is the database representation of a recorded transaction.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Description   *string         `db:"description"` // Nullable
	Amount        float64         `db:"amount"`
	TrxType       TransactionType `db:"trx_type"`
	CreatedAt     time.Time       `db:"created_at"`
}
