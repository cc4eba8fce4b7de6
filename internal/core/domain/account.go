package domain

import "github.com/shopspring/decimal"

// Card is a stored-balance payment card. Number identifies it; the currency
// is fixed at creation and the balance changes only on a successful payment.
type Card struct {
	Number   string          `json:"number"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// Account is a customer known to the machine, seeded once at process start.
// Only its card balances ever change.
type Account struct {
	AccountID string  `json:"accountID"`
	FullName  string  `json:"fullName"`
	Cards     []*Card `json:"cards"`
}

// CardByNumber finds one of the account's cards, or nil.
func (a *Account) CardByNumber(number string) *Card {
	for _, c := range a.Cards {
		if c.Number == number {
			return c
		}
	}
	return nil
}
