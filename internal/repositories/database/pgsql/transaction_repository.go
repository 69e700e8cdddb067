package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack-app/fintrack_backend/internal/apperrors"
	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack-app/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack-app/fintrack_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Description:   d.Description,
		Amount:        d.Amount,
		TrxType:       models.TransactionType(d.TrxType),
		CreatedAt:     d.CreatedAt,
	}
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		TrxType:       domain.TransactionType(m.TrxType),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, description, amount, trx_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Description,
		modelTxn.Amount,
		modelTxn.TrxType,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, description, amount, trx_type, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.UserID,
		&modelTxn.Description,
		&modelTxn.Amount,
		&modelTxn.TrxType,
		&modelTxn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	// Secondary sort on the id keeps equal timestamps in a stable relative
	// order across calls.
	query := `
        SELECT transaction_id, user_id, description, amount, trx_type, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, transaction_id;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	domainTxns := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.UserID,
			&modelTxn.Description,
			&modelTxn.Amount,
			&modelTxn.TrxType,
			&modelTxn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		domainTxns = append(domainTxns, toDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return domainTxns, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		// A concurrent delete can win the race; the second caller sees not found.
		return apperrors.ErrNotFound
	}
	return nil
}
