package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
	portsrepo "github.com/vendsim/vendsim/internal/core/ports/repositories"
	portssvc "github.com/vendsim/vendsim/internal/core/ports/services"
	"github.com/vendsim/vendsim/internal/dto"
)

// cashButtonCount is how many coin buttons the cash entry screen offers:
// the largest denominations of the settlement currency.
const cashButtonCount = 4

// SessionService owns the single transaction session and handles every
// presentation intent against it. A mutex serializes intents so each one is
// handled to completion before the next, matching the machine's synchronous
// event model.
type SessionService struct {
	mu         sync.Mutex
	session    *domain.Session
	catalog    portssvc.CatalogSvcFacade
	accounts   portsrepo.AccountRepository
	conversion *ConversionService
	stores     *StoreFactory
}

// NewSessionService creates a SessionService with a fresh idle session.
func NewSessionService(
	catalog portssvc.CatalogSvcFacade,
	accounts portsrepo.AccountRepository,
	conversion *ConversionService,
	stores *StoreFactory,
) *SessionService {
	return &SessionService{
		session:    domain.NewSession(),
		catalog:    catalog,
		accounts:   accounts,
		conversion: conversion,
		stores:     stores,
	}
}

// SelectProduct starts a transaction with a product from the catalog.
func (s *SessionService) SelectProduct(ctx context.Context, req dto.SelectProductRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.ProductSelectionEnabled() {
		return nil, s.fail(fmt.Errorf("%w: a transaction is already in progress", apperrors.ErrValidation))
	}
	item, err := s.catalog.FindProduct(ctx, req.Name)
	if err != nil {
		return nil, s.fail(err)
	}

	s.session.SelectedProduct = domain.NewProduct(item.Name, item.BasePrice)
	s.session.State = domain.StateProductSelected
	s.session.Err = nil
	return s.render(fmt.Sprintf("Selected product: %s!\nPlease select a currency", item.Name)), nil
}

// SelectCurrency converts the selected product into a settlement currency.
// On failure the product keeps its previous currency and price.
func (s *SessionService) SelectCurrency(ctx context.Context, req dto.SelectCurrencyRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.SelectedProduct == nil {
		return nil, s.fail(fmt.Errorf("%w: select a product before a currency", apperrors.ErrProductNotSelected))
	}
	if s.session.State != domain.StateProductSelected && s.session.State != domain.StateCurrencySelected {
		return nil, s.fail(fmt.Errorf("%w: currency can no longer be changed", apperrors.ErrValidation))
	}
	currency, err := domain.ParseCurrency(req.Code)
	if err != nil {
		return nil, s.fail(err)
	}
	if err := s.conversion.Convert(s.session.SelectedProduct, currency); err != nil {
		return nil, s.fail(err)
	}

	s.session.State = domain.StateCurrencySelected
	s.session.Err = nil
	return s.render(fmt.Sprintf("Selected currency: %s\nChoose a payment type", currency)), nil
}

// SelectPaymentType chooses the cash or card settlement path.
func (s *SessionService) SelectPaymentType(ctx context.Context, req dto.SelectPaymentTypeRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.SelectedProduct == nil {
		return nil, s.fail(fmt.Errorf("%w: select a product before a payment type", apperrors.ErrProductNotSelected))
	}
	if s.session.State != domain.StateCurrencySelected {
		return nil, s.fail(fmt.Errorf("%w: select a currency before a payment type", apperrors.ErrValidation))
	}
	paymentType, err := domain.ParsePaymentType(req.Type)
	if err != nil {
		return nil, s.fail(err)
	}

	s.session.PaymentType = paymentType
	s.session.State = domain.StatePaymentTypeSelected
	s.session.Err = nil
	return s.render(s.prepaymentDisplay()), nil
}

// InsertDenomination adds one coin to the entered amount. Only values the
// cash entry screen currently offers are accepted.
func (s *SessionService) InsertDenomination(ctx context.Context, req dto.InsertDenominationRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCashEntry(); err != nil {
		return nil, s.fail(err)
	}
	buttons, err := s.cashButtonValues()
	if err != nil {
		return nil, s.fail(err)
	}
	accepted := false
	for _, v := range buttons {
		if v.Equal(req.Value) {
			accepted = true
			break
		}
	}
	if !accepted {
		return nil, s.fail(fmt.Errorf("%w: denomination %s is not offered", apperrors.ErrValidation, domain.FormatAmount(req.Value)))
	}

	s.session.EnteredAmount = s.session.EnteredAmount.Add(req.Value)
	s.session.State = domain.StateCashEntry
	s.session.Err = nil
	return s.render(s.prepaymentDisplay()), nil
}

// PayCash settles the transaction in cash. The entered amount must cover the
// price; the owed change must be resolvable from a freshly stocked store.
// Both failure modes keep the session in the cash entry step so the customer
// can insert more coins or retry.
func (s *SessionService) PayCash(ctx context.Context) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCashEntry(); err != nil {
		return nil, s.fail(err)
	}
	product := s.session.SelectedProduct
	if s.session.EnteredAmount.LessThan(product.Price) {
		return nil, s.fail(fmt.Errorf("%w: entered %s, price %s %s", apperrors.ErrInsufficientFunds,
			domain.FormatAmount(s.session.EnteredAmount), domain.FormatAmount(product.Price), product.Currency))
	}

	owed := domain.Quantize(s.session.EnteredAmount.Sub(product.Price))
	s.session.PaidAmount = &owed

	store, err := s.stores.NewStore(product.Currency)
	if err != nil {
		return nil, s.fail(err)
	}
	s.session.Store = store

	lines, err := CalculateChange(owed, store)
	if err != nil {
		return nil, s.fail(err)
	}

	s.session.Change = lines
	s.session.State = domain.StateCashResult
	s.session.Err = nil
	resp := s.render(fmt.Sprintf("Dispensed change: %s\nTake your product\nThank you", domain.FormatAmount(owed)))
	resp.ReceiptID = uuid.NewString()
	return resp, nil
}

// SelectAccount picks the paying customer account.
func (s *SessionService) SelectAccount(ctx context.Context, req dto.SelectAccountRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCardPayment(); err != nil {
		return nil, s.fail(err)
	}
	account, err := s.accounts.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, s.fail(err)
	}

	s.session.SelectedAccount = account
	s.session.SelectedCard = nil
	s.session.State = domain.StateCardPayment
	s.session.Err = nil
	return s.render(s.prepaymentDisplay()), nil
}

// SelectCard picks one of the selected account's cards.
func (s *SessionService) SelectCard(ctx context.Context, req dto.SelectCardRequest) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCardPayment(); err != nil {
		return nil, s.fail(err)
	}
	if s.session.SelectedAccount == nil {
		return nil, s.fail(fmt.Errorf("%w: select an account before a card", apperrors.ErrAccountNotSelected))
	}
	card := s.session.SelectedAccount.CardByNumber(req.CardNumber)
	if card == nil {
		return nil, s.fail(fmt.Errorf("%w: card %q", apperrors.ErrNotFound, req.CardNumber))
	}

	s.session.SelectedCard = card
	s.session.State = domain.StateCardPayment
	s.session.Err = nil
	return s.render(s.prepaymentDisplay()), nil
}

// PayCard settles the transaction against the selected card's balance.
// Preconditions are checked in order and the first failure wins; nothing is
// debited until all pass. A successful debit is permanent on the card and
// survives a session reset.
func (s *SessionService) PayCard(ctx context.Context) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCardPayment(); err != nil {
		return nil, s.fail(err)
	}
	if s.session.SelectedAccount == nil {
		return nil, s.fail(fmt.Errorf("%w: select an account first", apperrors.ErrAccountNotSelected))
	}
	if s.session.SelectedCard == nil {
		return nil, s.fail(fmt.Errorf("%w: select a card first", apperrors.ErrCardNotSelected))
	}

	card := s.session.SelectedCard
	price, err := s.conversion.PriceIn(s.session.SelectedProduct, card.Currency)
	if err != nil {
		return nil, s.fail(err)
	}
	if card.Balance.LessThan(price) {
		return nil, s.fail(fmt.Errorf("%w: current balance %s %s", apperrors.ErrInsufficientBalance,
			domain.FormatAmount(card.Balance), card.Currency))
	}

	card.Balance = domain.Quantize(card.Balance.Sub(price))
	s.session.State = domain.StateCardPayment
	s.session.Err = nil
	resp := s.render(fmt.Sprintf("%s paid with card %s\nTake your product\nThank you",
		s.session.SelectedAccount.FullName, card.Number))
	resp.ReceiptID = uuid.NewString()
	return resp, nil
}

// ChangeTable renders the change of the last cash payment.
func (s *SessionService) ChangeTable(ctx context.Context) (*dto.TableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Change == nil {
		return nil, fmt.Errorf("%w: no change has been computed", apperrors.ErrNotFound)
	}
	return dto.ToChangeTable(s.session.Change), nil
}

// DenominationsTable renders the remaining stock of the last used store.
func (s *SessionService) DenominationsTable(ctx context.Context) (*dto.TableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Store == nil {
		return nil, fmt.Errorf("%w: no denomination store has been used", apperrors.ErrNotFound)
	}
	return dto.ToDenominationsTable(s.session.Store), nil
}

// CashButtons lists the coin values the cash entry screen offers.
func (s *SessionService) CashButtons(ctx context.Context) (*dto.CashButtonsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.SelectedProduct == nil {
		return nil, fmt.Errorf("%w: select a product first", apperrors.ErrProductNotSelected)
	}
	values, err := s.cashButtonValues()
	if err != nil {
		return nil, err
	}
	resp := &dto.CashButtonsResponse{Currency: string(s.session.SelectedProduct.Currency)}
	for _, v := range values {
		resp.Values = append(resp.Values, domain.FormatAmount(v))
	}
	return resp, nil
}

// Snapshot renders the current session without changing it.
func (s *SessionService) Snapshot(ctx context.Context) *dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(s.stateDisplay())
}

// Reset returns the session to its initial empty state. Accounts and cards
// are untouched.
func (s *SessionService) Reset(ctx context.Context) *dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	return s.render("Select a product")
}

// requireCashEntry guards the cash path intents.
func (s *SessionService) requireCashEntry() error {
	if s.session.SelectedProduct == nil {
		return fmt.Errorf("%w: select a product first", apperrors.ErrProductNotSelected)
	}
	if s.session.PaymentType != domain.PaymentCash {
		return fmt.Errorf("%w: cash payment not selected", apperrors.ErrInvalidPaymentType)
	}
	return nil
}

// requireCardPayment guards the card path intents.
func (s *SessionService) requireCardPayment() error {
	if s.session.SelectedProduct == nil {
		return fmt.Errorf("%w: select a product first", apperrors.ErrProductNotSelected)
	}
	if s.session.PaymentType != domain.PaymentCard {
		return fmt.Errorf("%w: card payment not selected", apperrors.ErrInvalidPaymentType)
	}
	return nil
}

// cashButtonValues returns the largest denominations of the settlement
// currency, one per coin button.
func (s *SessionService) cashButtonValues() ([]decimal.Decimal, error) {
	values, err := s.session.SelectedProduct.Currency.DenominationValues()
	if err != nil {
		return nil, err
	}
	if len(values) > cashButtonCount {
		values = values[:cashButtonCount]
	}
	return values, nil
}

// prepaymentDisplay is the screen text shown while a payment is being
// assembled.
func (s *SessionService) prepaymentDisplay() string {
	p := s.session.SelectedProduct
	msg := fmt.Sprintf("Selected currency: %s\nProduct price: %s", p.Currency, domain.FormatAmount(p.Price))
	if s.session.PaymentType == domain.PaymentCash {
		msg += fmt.Sprintf("\nInserted sum: %s", domain.FormatAmount(s.session.EnteredAmount))
	}
	return msg
}

// stateDisplay picks the screen text for a plain refresh.
func (s *SessionService) stateDisplay() string {
	switch s.session.State {
	case domain.StateIdle:
		return "Select a product"
	case domain.StateProductSelected:
		return fmt.Sprintf("Selected product: %s!\nPlease select a currency", s.session.SelectedProduct.Name)
	case domain.StateCurrencySelected:
		return fmt.Sprintf("Selected currency: %s\nChoose a payment type", s.session.SelectedProduct.Currency)
	case domain.StateCashResult:
		return fmt.Sprintf("Dispensed change: %s\nTake your product\nThank you", domain.FormatAmount(*s.session.PaidAmount))
	default:
		return s.prepaymentDisplay()
	}
}

// fail records the error on the session so the next display refresh shows it.
func (s *SessionService) fail(err error) error {
	s.session.SetError(err)
	return err
}

// render builds the display-ready view of the session.
func (s *SessionService) render(display string) *dto.SessionResponse {
	sess := s.session
	resp := &dto.SessionResponse{
		State:                   string(sess.State),
		Display:                 display,
		Product:                 dto.ToProductView(sess.SelectedProduct),
		EnteredAmount:           domain.FormatAmount(sess.EnteredAmount),
		ProductSelectionEnabled: sess.ProductSelectionEnabled(),
	}
	if sess.PaidAmount != nil {
		resp.PaidAmount = domain.FormatAmount(*sess.PaidAmount)
	}
	if sess.Err != nil {
		resp.Error = sess.Err.Error()
	}
	return resp
}
