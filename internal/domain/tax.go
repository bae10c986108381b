package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Totals struct {
	Subtotal Money
	Tax      Money
	Total    Money
}

// ComputeTax returns subtotal x rate rounded to the currency's minor unit.
func ComputeTax(subtotal Money, rate decimal.Decimal) Money {
	return Money{Amount: subtotal.Amount.Mul(rate), Currency: subtotal.Currency}.Round()
}

func ComputeTotal(subtotal, tax Money) (Money, error) {
	total, err := subtotal.Add(tax)
	if err != nil {
		return Money{}, fmt.Errorf("subtotal.Add: %w", err)
	}
	return total, nil
}

func ComputeTotals(subtotal Money, rate decimal.Decimal) (Totals, error) {
	tax := ComputeTax(subtotal, rate)

	total, err := ComputeTotal(subtotal, tax)
	if err != nil {
		return Totals{}, fmt.Errorf("ComputeTotal: %w", err)
	}

	return Totals{Subtotal: subtotal, Tax: tax, Total: total}, nil
}
