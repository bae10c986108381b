package domain_test

import (
	"testing"

	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		iso       string
		want      string
		wantError string
	}{
		{
			name:   "usd: ok",
			amount: "3.5",
			iso:    "USD",
			want:   "USD 3.50",
		},
		{
			name:   "zero decimal currency: ok",
			amount: "1200",
			iso:    "JPY",
			want:   "JPY 1200",
		},
		{
			name:      "unknown currency: error",
			amount:    "1",
			iso:       "ZZZ",
			wantError: "currency[ZZZ] is not valid",
		},
		{
			name:      "bad amount: error",
			amount:    "abc",
			iso:       "EUR",
			wantError: "amount[abc] is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.ParseMoney(tt.amount, tt.iso)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a := domain.NewMoney(decimal.RequireFromString("0.1"), currency.USD)
	b := domain.NewMoney(decimal.RequireFromString("0.2"), currency.USD)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("0.3")))

	_, err = a.Add(domain.NewMoney(decimal.NewFromInt(1), currency.EUR))
	require.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		name           string
		amount         string
		cur            currency.Unit
		want           string
		wantMinorUnits int64
	}{
		{
			name:           "half rounds away from zero",
			amount:         "0.125",
			cur:            currency.USD,
			want:           "USD 0.13",
			wantMinorUnits: 13,
		},
		{
			name:           "below half rounds down",
			amount:         "1.2349",
			cur:            currency.EUR,
			want:           "EUR 1.23",
			wantMinorUnits: 123,
		},
		{
			name:           "zero minor digits",
			amount:         "99.5",
			cur:            currency.JPY,
			want:           "JPY 100",
			wantMinorUnits: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.NewMoney(decimal.RequireFromString(tt.amount), tt.cur)

			assert.Equal(t, tt.want, m.Round().String())
			assert.Equal(t, tt.wantMinorUnits, m.MinorUnits())
		})
	}
}

func TestMoney_Mul(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("4.75"), currency.USD)

	assert.Equal(t, "USD 14.25", m.Mul(3).String())
	assert.True(t, m.Mul(0).IsZero())
}
