package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/apperrors"
)

// PaymentType selects the settlement path of a transaction.
type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentCard PaymentType = "card"
)

// ParsePaymentType validates a raw payment type at the system boundary.
func ParsePaymentType(raw string) (PaymentType, error) {
	switch PaymentType(raw) {
	case PaymentCash, PaymentCard:
		return PaymentType(raw), nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidPaymentType, raw)
}

// SessionState is the step of the transaction the customer is on.
type SessionState string

const (
	StateIdle                SessionState = "IDLE"
	StateProductSelected     SessionState = "PRODUCT_SELECTED"
	StateCurrencySelected    SessionState = "CURRENCY_SELECTED"
	StatePaymentTypeSelected SessionState = "PAYMENT_TYPE_SELECTED"
	StateCashEntry           SessionState = "CASH_ENTRY"
	StateCashResult          SessionState = "CASH_RESULT"
	StateCardPayment         SessionState = "CARD_PAYMENT"
)

// Session is the mutable record of one customer's in-progress transaction,
// from product selection through payment completion or reset. Exactly one
// instance exists per machine; it is passed explicitly so more could be
// added later.
type Session struct {
	State           SessionState
	SelectedProduct *Product
	SelectedAccount *Account
	SelectedCard    *Card
	PaymentType     PaymentType
	EnteredAmount   decimal.Decimal
	PaidAmount      *decimal.Decimal // cash change owed, set by a successful cash payment
	Change          []ChangeLine
	Store           *DenominationStore // last store used for a change calculation
	Err             error
}

// NewSession returns a session in its initial empty state.
func NewSession() *Session {
	return &Session{
		State:         StateIdle,
		EnteredAmount: decimal.Zero,
	}
}

// Reset returns the session to its initial empty state. Account and card
// data live outside the session and are not touched.
func (s *Session) Reset() {
	*s = *NewSession()
}

// SetError records a failure so the next display refresh can surface it.
func (s *Session) SetError(err error) {
	s.Err = err
}

// ProductSelectionEnabled reports whether the product grid should accept
// input; it is derived from state, never stored.
func (s *Session) ProductSelectionEnabled() bool {
	return s.State == StateIdle
}
