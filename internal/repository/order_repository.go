package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pos-cart/internal/db"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/port"
	"golang.org/x/text/currency"
)

var ErrOrderNotFound = errors.New("order not found")

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// Record stores the order and its lines in one transaction.
func (r *orderRepository) Record(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("order has no lines")
	}
	if err := order.PaymentMethod.Validate(); err != nil {
		return fmt.Errorf("PaymentMethod.Validate: %w", err)
	}
	if err := validateLines(order.Lines); err != nil {
		return fmt.Errorf("validateLines: %w", err)
	}

	_, err := withTx(ctx, r.pool, r.q, recordTx, func(q *db.Queries) (struct{}, error) {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:            order.ID,
			Currency:      order.Total.Currency.String(),
			Subtotal:      order.Subtotal.Amount,
			Tax:           order.Tax.Amount,
			Total:         order.Total.Amount,
			TaxRate:       order.TaxRate,
			PaymentMethod: string(order.PaymentMethod),
			CreatedAt:     order.CreatedAt,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, line := range order.Lines {
			err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
				OrderID:         order.ID,
				LineNo:          int32(i),
				ProductID:       line.Product.ID,
				ProductName:     line.Product.Name,
				ProductCategory: line.Product.Category,
				UnitPrice:       line.Product.UnitPrice.Amount,
				Quantity:        int32(line.Quantity),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.InsertOrderLine[%d]: %w", i, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

// validateLines keeps line numbers and quantities within the int columns of order_lines.
func validateLines(lines []domain.LineItem) error {
	if len(lines) > math.MaxInt32 {
		return fmt.Errorf("order has %d lines, more than %d", len(lines), math.MaxInt32)
	}

	for i, line := range lines {
		if line.Quantity < 1 || line.Quantity > math.MaxInt32 {
			return fmt.Errorf("line[%d] quantity %d is out of range [1, %d]", i, line.Quantity, math.MaxInt32)
		}
	}

	return nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	return withTx(ctx, r.pool, r.q, readOrderTx, func(q *db.Queries) (domain.Order, error) {
		row, err := q.GetOrder(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
		}

		lines, err := q.GetOrderLines(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrderLines: %w", err)
		}

		order, err := mapOrderToDomain(row, lines)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		return order, nil
	})
}

func mapOrderToDomain(row db.Order, lines []db.OrderLine) (domain.Order, error) {
	cur, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	method, err := domain.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ParsePaymentMethod: %w", err)
	}

	items := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.LineItem{
			Product: domain.Product{
				ID:        line.ProductID,
				Name:      line.ProductName,
				UnitPrice: domain.NewMoney(line.UnitPrice, cur),
				Category:  line.ProductCategory,
			},
			Quantity: int(line.Quantity),
		})
	}

	return domain.Order{
		ID:            row.ID,
		Lines:         items,
		Subtotal:      domain.NewMoney(row.Subtotal, cur),
		Tax:           domain.NewMoney(row.Tax, cur),
		Total:         domain.NewMoney(row.Total, cur),
		TaxRate:       row.TaxRate,
		PaymentMethod: method,
		CreatedAt:     row.CreatedAt,
	}, nil
}
