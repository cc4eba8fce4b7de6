package services

import (
	"context"

	"github.com/vendsim/vendsim/internal/dto"
)

// SessionSvcFacade is the full set of intents the presentation layer may
// raise against the transaction session. Every call is handled to completion
// before the next is accepted.
type SessionSvcFacade interface {
	// SelectProduct starts a transaction with a product from the catalog.
	SelectProduct(ctx context.Context, req dto.SelectProductRequest) (*dto.SessionResponse, error)

	// SelectCurrency converts the selected product into a settlement currency.
	SelectCurrency(ctx context.Context, req dto.SelectCurrencyRequest) (*dto.SessionResponse, error)

	// SelectPaymentType chooses the cash or card settlement path.
	SelectPaymentType(ctx context.Context, req dto.SelectPaymentTypeRequest) (*dto.SessionResponse, error)

	// InsertDenomination adds one coin to the entered amount (cash path).
	InsertDenomination(ctx context.Context, req dto.InsertDenominationRequest) (*dto.SessionResponse, error)

	// PayCash settles the transaction in cash and computes change.
	PayCash(ctx context.Context) (*dto.SessionResponse, error)

	// SelectAccount picks the paying customer account (card path).
	SelectAccount(ctx context.Context, req dto.SelectAccountRequest) (*dto.SessionResponse, error)

	// SelectCard picks one of the selected account's cards.
	SelectCard(ctx context.Context, req dto.SelectCardRequest) (*dto.SessionResponse, error)

	// PayCard settles the transaction against the selected card's balance.
	PayCard(ctx context.Context) (*dto.SessionResponse, error)

	// ChangeTable renders the change of the last cash payment.
	ChangeTable(ctx context.Context) (*dto.TableResponse, error)

	// DenominationsTable renders the remaining stock of the last used store.
	DenominationsTable(ctx context.Context) (*dto.TableResponse, error)

	// CashButtons lists the coin values the cash entry screen offers.
	CashButtons(ctx context.Context) (*dto.CashButtonsResponse, error)

	// Snapshot renders the current session without changing it.
	Snapshot(ctx context.Context) *dto.SessionResponse

	// Reset returns the session to its initial empty state.
	Reset(ctx context.Context) *dto.SessionResponse
}

// ServiceContainer holds instances of all the application services and is
// the single entry point the handlers are wired against.
type ServiceContainer struct {
	Session SessionSvcFacade
	Account AccountSvcFacade
	Catalog CatalogSvcFacade
}
