package domain

import "github.com/shopspring/decimal"

// Denomination is one coin value together with the quantity of it currently
// stocked in the machine.
type Denomination struct {
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
	Currency Currency        `json:"currency"`
}

// DenominationStore is the machine's coin stock for one currency.
// Denominations are kept in descending value order; the greedy change
// algorithm walks them in that order.
type DenominationStore struct {
	Currency      Currency       `json:"currency"`
	Denominations []Denomination `json:"denominations"`
}

// ChangeLine is one row of a computed change breakdown: Count coins of Value.
type ChangeLine struct {
	Value    decimal.Decimal `json:"value"`
	Count    int             `json:"count"`
	Currency Currency        `json:"currency"`
}

// Amount returns the total the line contributes to the change.
func (l ChangeLine) Amount() decimal.Decimal {
	return l.Value.Mul(decimal.NewFromInt(int64(l.Count)))
}
