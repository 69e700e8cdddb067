package repositories

import (
	"context"

	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	// Returns apperrors.ErrNotFound when no such row exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUserID retrieves all transactions owned by the given
	// user, ordered by creation time descending (stable order for ties).
	FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction permanently.
	// Returns apperrors.ErrNotFound when the row was already gone.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
