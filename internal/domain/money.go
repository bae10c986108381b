package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// ParseMoney parses a decimal amount string and an ISO 4217 code.
func ParseMoney(amount, iso string) (Money, error) {
	cur, err := currency.ParseISO(iso)
	if err != nil {
		return Money{}, fmt.Errorf("currency[%s] is not valid: %w", iso, err)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	return Money{Amount: d, Currency: cur}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(n int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(n)), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Round rounds half away from zero to the standard number of minor digits of the currency.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(scale(m.Currency)), Currency: m.Currency}
}

// MinorUnits returns the rounded amount in the smallest unit of the currency, e.g. cents.
func (m Money) MinorUnits() int64 {
	return m.Round().Amount.Shift(scale(m.Currency)).IntPart()
}

// String renders the amount with the currency's standard scale, e.g. "USD 9.72".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(scale(m.Currency)))
}

func scale(cur currency.Unit) int32 {
	s, _ := currency.Standard.Rounding(cur)
	return int32(s)
}
