package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, string(m))
	}
}

// Order is the snapshot of a cart at checkout.
type Order struct {
	ID            uuid.UUID
	Lines         []LineItem
	Subtotal      Money
	Tax           Money
	Total         Money
	TaxRate       decimal.Decimal
	PaymentMethod PaymentMethod

	CreatedAt time.Time
}
