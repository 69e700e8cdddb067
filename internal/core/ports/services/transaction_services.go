package services

import (
	"context"

	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	"github.com/fintrack-app/fintrack_backend/internal/dto"
)

// TransactionSvcFacade defines the operations of the transaction ledger.
// Every operation takes the authenticated user's ID explicitly; there is no
// ambient session state.
type TransactionSvcFacade interface {
	// RecordTransaction validates the payload and persists a new transaction
	// owned by userID. Returns the owning user alongside the transaction so
	// callers can shape the response without a second lookup.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, *domain.User, error)

	// ListTransactions returns all of userID's transactions, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, *domain.User, error)

	// DeleteTransaction removes the identified transaction if and only if
	// userID owns it. Checks run in a fixed order: id format, existence,
	// ownership.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}
