package dto

import (
	"strconv"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// TableResponse is the column-oriented table the display dialogs render:
// one entry per row in each column, columns aligned by index. Amount is the
// coin count for a change table and the remaining quantity for a
// denominations table.
type TableResponse struct {
	Value    []string `json:"value"`
	Amount   []string `json:"amount"`
	Currency []string `json:"currency"`
}

// CashButtonsResponse lists the coin values offered on the cash entry screen.
type CashButtonsResponse struct {
	Currency string   `json:"currency"`
	Values   []string `json:"values"`
}

// ToChangeTable renders a change breakdown, one row per consumed denomination.
func ToChangeTable(lines []domain.ChangeLine) *TableResponse {
	t := &TableResponse{
		Value:    make([]string, 0, len(lines)),
		Amount:   make([]string, 0, len(lines)),
		Currency: make([]string, 0, len(lines)),
	}
	for _, l := range lines {
		t.Value = append(t.Value, domain.FormatAmount(l.Value))
		t.Amount = append(t.Amount, strconv.Itoa(l.Count))
		t.Currency = append(t.Currency, string(l.Currency))
	}
	return t
}

// ToDenominationsTable renders a store's remaining stock, one row per
// denomination.
func ToDenominationsTable(store *domain.DenominationStore) *TableResponse {
	t := &TableResponse{
		Value:    make([]string, 0, len(store.Denominations)),
		Amount:   make([]string, 0, len(store.Denominations)),
		Currency: make([]string, 0, len(store.Denominations)),
	}
	for _, d := range store.Denominations {
		t.Value = append(t.Value, domain.FormatAmount(d.Value))
		t.Amount = append(t.Amount, strconv.Itoa(d.Quantity))
		t.Currency = append(t.Currency, string(d.Currency))
	}
	return t
}
