package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/domain"
)

// CheckoutSink receives finalized orders.
type CheckoutSink interface {
	Record(ctx context.Context, order domain.Order) error
}

type OrderRepository interface {
	CheckoutSink
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
}
