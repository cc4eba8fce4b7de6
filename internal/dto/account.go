package dto

import "github.com/vendsim/vendsim/internal/core/domain"

// CardResponse is a card as listed on the card payment screen.
type CardResponse struct {
	Number   string `json:"number"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// AccountResponse is a registry account with its cards.
type AccountResponse struct {
	AccountID string         `json:"accountID"`
	FullName  string         `json:"fullName"`
	Cards     []CardResponse `json:"cards"`
}

// ToAccountResponse converts a domain account for the card payment screen.
func ToAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID: a.AccountID,
		FullName:  a.FullName,
		Cards:     make([]CardResponse, 0, len(a.Cards)),
	}
	for _, c := range a.Cards {
		resp.Cards = append(resp.Cards, CardResponse{
			Number:   c.Number,
			Balance:  domain.FormatAmount(c.Balance),
			Currency: string(c.Currency),
		})
	}
	return resp
}
