package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
)

// AccountRepository is the in-memory account registry. It is seeded once at
// construction and lives for the process lifetime; only card balances change.
type AccountRepository struct {
	accounts []*domain.Account
	byID     map[string]*domain.Account
}

// NewAccountRepository builds the registry with the fixed seed accounts.
func NewAccountRepository() *AccountRepository {
	accounts := seedAccounts()
	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}
	return &AccountRepository{accounts: accounts, byID: byID}
}

// FindAccountByID retrieves a specific account by its identifier.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}

// ListAccounts retrieves every seeded account.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func seedAccounts() []*domain.Account {
	return []*domain.Account{
		{
			AccountID: "acc-001",
			FullName:  "Jan Kowalski",
			Cards: []*domain.Card{
				{Number: "4532 7712 0001", Balance: decimal.New(5000, -2), Currency: domain.PLN},
				{Number: "4532 7712 0002", Balance: decimal.New(2000, -2), Currency: domain.USD},
			},
		},
		{
			AccountID: "acc-002",
			FullName:  "Anna Nowak",
			Cards: []*domain.Card{
				{Number: "4916 3388 1001", Balance: decimal.New(3000, -2), Currency: domain.EUR},
			},
		},
		{
			AccountID: "acc-003",
			FullName:  "Piotr Zielinski",
			Cards: []*domain.Card{
				{Number: "4716 9904 2001", Balance: decimal.New(500, -2), Currency: domain.PLN},
			},
		},
	}
}
