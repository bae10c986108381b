package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func randomProduct() domain.Product {
	return domain.Product{
		ID:        uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		UnitPrice: randomMoney(),
		Category:  gofakeit.ProductCategory(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: currency.USD,
	}
}

func moneyComparer() cmp.Option {
	return cmp.Comparer(func(x, y domain.Money) bool {
		return x.String() == y.String() && x.Amount.Equal(y.Amount)
	})
}
