package sink

import (
	"context"
	"strconv"

	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/port"
	"go.uber.org/zap"
)

// LogSink records orders by logging them. It never fails.
type LogSink struct {
	logger *zap.Logger
}

var _ port.CheckoutSink = (*LogSink)(nil)

func NewLog(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, order domain.Order) error {
	lines := make([]zap.Field, 0, len(order.Lines))
	for i, line := range order.Lines {
		lines = append(lines, zap.Dict(strconv.Itoa(i),
			zap.String("name", line.Product.Name),
			zap.Stringer("product_id", line.Product.ID),
			zap.Int("quantity", line.Quantity),
			zap.Stringer("unit_price", line.Product.UnitPrice)))
	}

	s.logger.Info("order recorded",
		zap.Stringer("order_id", order.ID),
		zap.Stringer("subtotal", order.Subtotal),
		zap.Stringer("tax", order.Tax),
		zap.Stringer("total", order.Total),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.Time("created_at", order.CreatedAt),
		zap.Dict("lines", lines...))

	return nil
}
