package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ClearPolicy decides whether checkout clears the cart before or after the sink acknowledges the order.
type ClearPolicy string

const (
	ClearOptimistic ClearPolicy = "optimistic"
	ClearConfirmed  ClearPolicy = "confirmed"
)

func ParseClearPolicy(s string) (ClearPolicy, error) {
	p := ClearPolicy(s)
	switch p {
	case ClearOptimistic, ClearConfirmed:
		return p, nil
	default:
		return "", fmt.Errorf("clear policy[%s] is not valid", s)
	}
}

type Config struct {
	Currency     currency.Unit
	TaxRate      decimal.Decimal
	ClearPolicy  ClearPolicy
	StrictLookup bool
}

func (c Config) Validate() error {
	if c.Currency == (currency.Unit{}) {
		return fmt.Errorf("currency is empty")
	}

	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate[%s] is out of range [0, 1]", c.TaxRate)
	}

	if _, err := ParseClearPolicy(string(c.ClearPolicy)); err != nil {
		return err
	}

	return nil
}
