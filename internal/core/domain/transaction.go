package domain

import "time"

// TransactionType indicates the direction of a transaction: money in or money out.
type TransactionType string

const (
	Inflow  TransactionType = "inflow"
	Outflow TransactionType = "outflow"
)

// IsValid reports whether the value is one of the two permitted variants.
// The set is closed; anything else is a validation failure at creation.
func (t TransactionType) IsValid() bool {
	return t == Inflow || t == Outflow
}

// Transaction represents a single recorded inflow or outflow for a user.
// Transactions are immutable once created; the only lifecycle transition after
// creation is deletion by the owner.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID (Not Null), set once at creation
	Description   *string         `json:"description"`   // Nullable
	Amount        float64         `json:"amount"`        // Signed; sign convention is up to the client
	TrxType       TransactionType `json:"trxType"`       // inflow or outflow (Not Null)
	CreatedAt     time.Time       `json:"createdAt"`     // Assigned from the system clock (UTC) at creation
}
