package domain_test

import (
	"testing"

	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, domain.Inflow.IsValid())
	assert.True(t, domain.Outflow.IsValid())

	// The set is closed; nothing else passes, including case variants.
	assert.False(t, domain.TransactionType("transfer").IsValid())
	assert.False(t, domain.TransactionType("INFLOW").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}
