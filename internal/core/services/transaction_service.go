package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack-app/fintrack_backend/internal/apperrors"
	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack-app/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack-app/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack-app/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

// TransactionService implements the ownership-scoped transaction ledger.
// It holds no state of its own; every call is validate + at most one store
// mutation or query.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	userRepo        portsrepo.UserReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, userRepo portsrepo.UserReader) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// Ensure TransactionService implements the facade
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// RecordTransaction validates the payload and persists a new transaction owned
// by userID. The owner row is resolved first because the response needs the
// owner's email, which also guarantees the FK target exists before the insert.
func (s *TransactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, *domain.User, error) {
	if req.Amount == nil {
		return nil, nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	trxType := domain.TransactionType(req.TrxType)
	if !trxType.IsValid() {
		return nil, nil, fmt.Errorf("%w: trx_type must be %q or %q", apperrors.ErrValidation, domain.Inflow, domain.Outflow)
	}

	owner, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve transaction owner: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        owner.UserID,
		Description:   req.Description,
		Amount:        *req.Amount,
		TrxType:       trxType,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &txn, owner, nil
}

// ListTransactions returns all of userID's transactions, newest first. An
// empty ledger is a valid result, not an error.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, *domain.User, error) {
	owner, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve transaction owner: %w", err)
	}

	txns, err := s.transactionRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, owner, nil
}

// DeleteTransaction removes the identified transaction if userID owns it.
// The checks run in a fixed order - id format, existence, ownership - because
// the order decides which error a caller sees: a malformed id is never a 404,
// and a foreign id is a 403 only once the row is known to exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTransactionID, transactionID)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if txn.UserID != userID {
		// Do not leak anything about the row beyond its existence.
		return apperrors.ErrForbidden
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}
