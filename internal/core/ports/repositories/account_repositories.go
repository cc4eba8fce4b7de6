package repositories

import (
	"context"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// AccountReader defines read operations for the account registry.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account known to the machine.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// AccountRepository is the full registry port. The registry is seeded once
// at process start and only card balances ever change, so no writer
// interface exists; the debit mutates the card returned by the reader.
type AccountRepository interface {
	AccountReader
}
