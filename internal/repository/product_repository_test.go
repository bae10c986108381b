package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pos-cart/internal/catalog"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/port"
	"github.com/nikolayk812/pos-cart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type productRepositorySuite struct {
	suite.Suite

	repo      port.ProductRepository
	pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewProduct(suite.pool)
}

func (suite *productRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *productRepositorySuite) TestSaveProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		product   domain.Product
		wantError string
	}{
		{
			name:    "save product: ok",
			product: randomProduct(),
		},
		{
			name: "save free product: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.UnitPrice.Amount = decimal.Zero
				return p
			}(),
		},
		{
			name: "save product with empty id: error",
			product: func() domain.Product {
				p := randomProduct()
				p.ID = uuid.Nil
				return p
			}(),
			wantError: "productID is empty",
		},
		{
			name: "save product with negative price: error",
			product: func() domain.Product {
				p := randomProduct()
				p.UnitPrice.Amount = decimal.NewFromInt(-1)
				return p
			}(),
			wantError: "price is negative",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveProduct(ctx, tt.product)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.repo.GetProduct(ctx, tt.product.ID)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.product, got, moneyComparer()))
		})
	}
}

func (suite *productRepositorySuite) TestSaveProduct_Upsert() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	p := randomProduct()
	require.NoError(t, suite.repo.SaveProduct(ctx, p))

	p.Name = gofakeit.ProductName()
	p.UnitPrice.Amount = decimal.RequireFromString("9.99")
	require.NoError(t, suite.repo.SaveProduct(ctx, p))

	products, err := suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Empty(t, cmp.Diff(p, products[0], moneyComparer()))
}

func (suite *productRepositorySuite) TestGetProduct_Unknown() {
	t := suite.T()

	_, err := suite.repo.GetProduct(t.Context(), uuid.New())
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func (suite *productRepositorySuite) TestListProducts_Menu() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	menu := catalog.Menu()
	for _, p := range menu {
		require.NoError(t, suite.repo.SaveProduct(ctx, p))
	}

	products, err := suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(menu))

	// the stored menu is a valid in-memory catalog
	_, err = catalog.NewMemory(products)
	require.NoError(t, err)
}

func (suite *productRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE products CASCADE")
	suite.NoError(err)
}
