package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		code    string
		want    domain.Currency
		wantErr bool
	}{
		{code: "PLN", want: domain.PLN},
		{code: "USD", want: domain.USD},
		{code: "EUR", want: domain.EUR},
		{code: "XXX", wantErr: true},
		{code: "pln", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := domain.ParseCurrency(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyRates(t *testing.T) {
	tests := []struct {
		currency domain.Currency
		rate     string
	}{
		{domain.PLN, "1"},
		{domain.USD, "0.26"},
		{domain.EUR, "0.22"},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			rate, err := tt.currency.Rate()
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.rate)),
				"rate %s != %s", rate, tt.rate)
		})
	}
}

func TestDenominationValues_DescendingCanonicalLists(t *testing.T) {
	tests := []struct {
		currency domain.Currency
		values   []string
	}{
		{domain.PLN, []string{"5.00", "2.00", "1.00", "0.50", "0.20", "0.10", "0.05", "0.01"}},
		{domain.USD, []string{"1.00", "0.50", "0.25", "0.10", "0.05", "0.01"}},
		{domain.EUR, []string{"2.00", "1.00", "0.50", "0.20", "0.10", "0.05", "0.02", "0.01"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			values, err := tt.currency.DenominationValues()
			require.NoError(t, err)
			require.Len(t, values, len(tt.values))
			for i, want := range tt.values {
				assert.Equal(t, want, values[i].StringFixed(2))
			}
		})
	}
}

func TestDenominationValues_InvalidCurrency(t *testing.T) {
	_, err := domain.Currency("GBP").DenominationValues()
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
}

func TestQuantize_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.00"},
		{"1.015", "1.02"},
		{"1.2345", "1.23"},
		{"2.675", "2.68"},
		{"5.00", "5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := domain.Quantize(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
