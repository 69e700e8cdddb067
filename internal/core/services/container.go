package services

import (
	portsrepo "github.com/fintrack-app/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack-app/fintrack_backend/internal/core/ports/services"
)

// NewServiceContainer builds all services on top of the given repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.User),
		Transaction: NewTransactionService(repos.Transaction, repos.User),
	}
}
