package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CategoryAll matches every product in ByCategory.
const CategoryAll = "all"

type Memory struct {
	products []domain.Product
}

var _ port.Catalog = (*Memory)(nil)

// NewMemory returns a catalog over the given products. All products must share one currency
// and have unique ids.
func NewMemory(products []domain.Product) (*Memory, error) {
	seen := make(map[uuid.UUID]struct{}, len(products))

	for i, p := range products {
		if p.ID == uuid.Nil {
			return nil, fmt.Errorf("product[%d] id is empty", i)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product[%s] is duplicated", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.UnitPrice.Amount.IsNegative() {
			return nil, fmt.Errorf("product[%s] price is negative", p.ID)
		}
		if p.UnitPrice.Currency != products[0].UnitPrice.Currency {
			return nil, fmt.Errorf("product[%s]: %w", p.ID, domain.ErrCurrencyMismatch)
		}
	}

	return &Memory{products: slices.Clone(products)}, nil
}

func (m *Memory) ListProducts(_ context.Context) ([]domain.Product, error) {
	return slices.Clone(m.products), nil
}

func (m *Memory) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, id)
}

// Search returns products whose name contains query, ignoring case. An empty query returns everything.
func (m *Memory) Search(query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(m.products)
	}

	var result []domain.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			result = append(result, p)
		}
	}
	return result
}

func (m *Memory) ByCategory(category string) []domain.Product {
	if category == CategoryAll {
		return slices.Clone(m.products)
	}

	var result []domain.Product
	for _, p := range m.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// Categories returns CategoryAll followed by the distinct categories in catalog order.
func (m *Memory) Categories() []string {
	categories := []string{CategoryAll}
	for _, p := range m.products {
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Menu is the storefront's default product list.
func Menu() []domain.Product {
	item := func(id, name, price, category string) domain.Product {
		return domain.Product{
			ID:        uuid.MustParse(id),
			Name:      name,
			UnitPrice: domain.NewMoney(decimal.RequireFromString(price), currency.USD),
			Category:  category,
		}
	}

	return []domain.Product{
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000001", "Espresso", "3.50", "coffee"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000002", "Cappuccino", "4.50", "coffee"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000003", "Latte", "4.75", "coffee"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000004", "Mocha", "5.00", "coffee"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000005", "Green Tea", "3.25", "tea"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000006", "Black Tea", "3.00", "tea"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000007", "Croissant", "2.50", "pastry"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000008", "Chocolate Muffin", "3.25", "pastry"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000009", "Blueberry Scone", "3.50", "pastry"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000010", "Sandwich", "6.50", "food"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000011", "Salad", "7.25", "food"),
		item("0b5f8f0e-1c1a-4c53-9d5e-000000000012", "Soup", "5.75", "food"),
	}
}
