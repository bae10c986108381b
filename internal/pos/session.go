package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrCheckoutNotRecorded wraps a checkout sink failure.
var ErrCheckoutNotRecorded = errors.New("checkout not recorded")

// Session is one point-of-sale session. It exclusively owns its cart and is not safe for concurrent use.
type Session struct {
	cfg  Config
	cart *domain.Cart
	sink port.CheckoutSink

	logger *zap.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

type Option func(*Session)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

func NewSession(cfg Config, sink port.CheckoutSink, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	if sink == nil {
		return nil, fmt.Errorf("sink is nil")
	}

	s := &Session{
		cfg:    cfg,
		cart:   domain.NewCart(cfg.Currency),
		sink:   sink,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Session) AddItem(p domain.Product) error {
	if p.UnitPrice.Currency != s.cfg.Currency {
		return fmt.Errorf("%w: product %s is priced in %s, cart is in %s",
			domain.ErrCurrencyMismatch, p.ID, p.UnitPrice.Currency, s.cfg.Currency)
	}

	s.cart.AddItem(p)
	s.logger.Debug("item added",
		zap.Stringer("product_id", p.ID),
		zap.Int("quantity", s.cart.Quantity(p.ID)))

	return nil
}

func (s *Session) UpdateQuantity(productID uuid.UUID, delta int) error {
	if !s.cart.UpdateQuantity(productID, delta) {
		return s.notFound(productID)
	}

	s.logger.Debug("quantity updated",
		zap.Stringer("product_id", productID),
		zap.Int("delta", delta),
		zap.Int("quantity", s.cart.Quantity(productID)))

	return nil
}

func (s *Session) RemoveItem(productID uuid.UUID) error {
	if !s.cart.RemoveItem(productID) {
		return s.notFound(productID)
	}

	s.logger.Debug("item removed", zap.Stringer("product_id", productID))

	return nil
}

func (s *Session) Clear() {
	s.cart.Clear()
	s.logger.Debug("cart cleared")
}

// Items returns a snapshot of the cart's line items.
func (s *Session) Items() []domain.LineItem {
	return s.cart.Snapshot()
}

func (s *Session) Subtotal() domain.Money {
	return s.cart.Subtotal()
}

func (s *Session) Tax(subtotal domain.Money) domain.Money {
	return domain.ComputeTax(subtotal, s.cfg.TaxRate)
}

func (s *Session) Total(subtotal, tax domain.Money) (domain.Money, error) {
	return domain.ComputeTotal(subtotal, tax)
}

func (s *Session) TaxRate() decimal.Decimal {
	return s.cfg.TaxRate
}

func (s *Session) Totals() (domain.Totals, error) {
	return domain.ComputeTotals(s.cart.Subtotal(), s.cfg.TaxRate)
}

// Checkout records an order snapshot with the checkout sink and clears the cart.
// With ClearOptimistic the cart is cleared before the sink is called and the order is returned
// alongside ErrCheckoutNotRecorded if the sink fails. With ClearConfirmed the cart is kept on sink failure.
func (s *Session) Checkout(ctx context.Context, method domain.PaymentMethod) (domain.Order, error) {
	if err := method.Validate(); err != nil {
		return domain.Order{}, err
	}

	if s.cart.IsEmpty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	totals, err := s.Totals()
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.Totals: %w", err)
	}

	order := domain.Order{
		ID:            s.newID(),
		Lines:         s.cart.Snapshot(),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		TaxRate:       s.cfg.TaxRate,
		PaymentMethod: method,
		CreatedAt:     s.now().UTC(),
	}

	if s.cfg.ClearPolicy == ClearConfirmed {
		if err := s.record(ctx, order); err != nil {
			return domain.Order{}, err
		}
		s.cart.Clear()
	} else {
		s.cart.Clear()
		if err := s.record(ctx, order); err != nil {
			return order, err
		}
	}

	s.logger.Info("checkout completed",
		zap.Stringer("order_id", order.ID),
		zap.Stringer("total", order.Total),
		zap.String("payment_method", string(method)),
		zap.Int("lines", len(order.Lines)))

	return order, nil
}

// Resend records an order that a previous Checkout returned with ErrCheckoutNotRecorded.
func (s *Session) Resend(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	if err := s.record(ctx, order); err != nil {
		return err
	}

	s.logger.Info("order resent", zap.Stringer("order_id", order.ID))
	return nil
}

func (s *Session) record(ctx context.Context, order domain.Order) error {
	if err := s.sink.Record(ctx, order); err != nil {
		s.logger.Error("checkout sink failed",
			zap.Stringer("order_id", order.ID),
			zap.String("clear_policy", string(s.cfg.ClearPolicy)),
			zap.Error(err))
		return fmt.Errorf("%w: sink.Record: %w", ErrCheckoutNotRecorded, err)
	}
	return nil
}

func (s *Session) notFound(productID uuid.UUID) error {
	if s.cfg.StrictLookup {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	s.logger.Debug("product not in cart", zap.Stringer("product_id", productID))
	return nil
}
