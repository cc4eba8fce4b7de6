package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// SelectProductRequest starts a transaction with a catalog product.
type SelectProductRequest struct {
	Name string `json:"name" binding:"required"`
}

// SelectCurrencyRequest chooses the settlement currency.
type SelectCurrencyRequest struct {
	Code string `json:"code" binding:"required,currencycode"`
}

// SelectPaymentTypeRequest chooses cash or card settlement.
type SelectPaymentTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=cash card"`
}

// InsertDenominationRequest adds one coin to the entered amount.
type InsertDenominationRequest struct {
	Value decimal.Decimal `json:"value" binding:"required"`
}

// SelectAccountRequest picks the paying account.
type SelectAccountRequest struct {
	AccountID string `json:"accountID" binding:"required"`
}

// SelectCardRequest picks one of the selected account's cards.
type SelectCardRequest struct {
	CardNumber string `json:"cardNumber" binding:"required"`
}

// ProductView is the selected product as the display shows it.
type ProductView struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// SessionResponse is the display-ready rendering of the session after an
// intent: the state, the message for the screen, and whatever transaction
// fields are set.
type SessionResponse struct {
	State                   string       `json:"state"`
	Display                 string       `json:"display"`
	Product                 *ProductView `json:"product,omitempty"`
	EnteredAmount           string       `json:"enteredAmount"`
	PaidAmount              string       `json:"paidAmount,omitempty"`
	ReceiptID               string       `json:"receiptID,omitempty"`
	Error                   string       `json:"error,omitempty"`
	ProductSelectionEnabled bool         `json:"productSelectionEnabled"`
}

// ToProductView converts a domain product for display.
func ToProductView(p *domain.Product) *ProductView {
	if p == nil {
		return nil
	}
	return &ProductView{
		Name:     p.Name,
		Price:    domain.FormatAmount(p.Price),
		Currency: string(p.Currency),
	}
}
