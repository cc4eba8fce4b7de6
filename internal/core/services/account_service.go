package services

import (
	"context"
	"fmt"

	"github.com/vendsim/vendsim/internal/core/domain"
	portsrepo "github.com/vendsim/vendsim/internal/core/ports/repositories"
)

// AccountService provides read access to the account registry.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// GetAccountByID retrieves a specific account by its identifier.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account in service: %w", err)
	}
	return account, nil
}

// ListAccounts retrieves every seeded account.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	if accounts == nil {
		return []*domain.Account{}, nil
	}
	return accounts, nil
}
