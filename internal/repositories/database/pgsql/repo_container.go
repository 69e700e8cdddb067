package pgsql

import (
	portsrepo "github.com/fintrack-app/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds all pgx-backed repositories on the given pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		User:        newPgxUserRepository(db),
		Transaction: newPgxTransactionRepository(db),
	}
}
