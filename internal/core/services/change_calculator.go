package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
)

// CalculateChange breaks the owed amount into denominations from the store.
//
// It is a single-pass greedy walk over the store's descending denomination
// list: a denomination is consumed only when the full greedy count fits its
// remaining quantity, otherwise it is skipped entirely. There is no
// backtracking, so with finite stock the walk can fail even when a different
// combination would have worked. On failure no partial change is returned
// and the remaining store quantities reflect whatever was consumed before
// the walk gave up; the caller discards the store.
func CalculateChange(owed decimal.Decimal, store *domain.DenominationStore) ([]domain.ChangeLine, error) {
	lines := make([]domain.ChangeLine, 0)
	for i := range store.Denominations {
		if !owed.IsPositive() {
			break
		}
		d := &store.Denominations[i]
		count := owed.Div(d.Value).IntPart()
		if count <= 0 || count > int64(d.Quantity) {
			continue
		}
		lines = append(lines, domain.ChangeLine{
			Value:    d.Value,
			Count:    int(count),
			Currency: d.Currency,
		})
		d.Quantity -= int(count)
		owed = owed.Sub(d.Value.Mul(decimal.NewFromInt(count)))
	}
	if owed.IsPositive() {
		return nil, fmt.Errorf("%w: %s %s cannot be dispensed", apperrors.ErrInsufficientChange,
			domain.FormatAmount(owed), store.Currency)
	}
	return lines, nil
}
