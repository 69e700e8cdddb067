package dto

import (
	"time"

	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// Amount is a pointer so that an explicit 0 passes `required` while a missing
// field does not. Description stays a pointer end to end: absent means NULL,
// never "".
type CreateTransactionRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" binding:"required"`
	TrxType     string   `json:"trx_type" binding:"required,trxtype"`
}

// TransactionResponse is the wire shape of a transaction, annotated with the
// owner's email and an is_owner flag for the frontend.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Description *string   `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	TrxType     string    `json:"trx_type"`
	CreatedAt   time.Time `json:"created_at"`
	IsOwner     bool      `json:"is_owner"`
}

// ToTransactionResponse converts a domain.Transaction and its owner to the
// response DTO. Both the create and list operations only ever surface the
// caller's own rows, so is_owner is always true here.
func ToTransactionResponse(txn *domain.Transaction, owner *domain.User) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		UserID:      txn.UserID,
		Email:       owner.Email,
		Description: txn.Description,
		Amount:      txn.Amount,
		TrxType:     string(txn.TrxType),
		CreatedAt:   txn.CreatedAt,
		IsOwner:     true,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions that all
// belong to owner.
func ToListTransactionsResponse(txns []domain.Transaction, owner *domain.User) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i], owner)
	}
	return responses
}
