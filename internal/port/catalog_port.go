package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/domain"
)

type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

type ProductRepository interface {
	Catalog
	SaveProduct(ctx context.Context, product domain.Product) error
}
