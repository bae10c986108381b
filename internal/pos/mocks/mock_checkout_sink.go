package mocks

import (
	"context"

	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutSink struct {
	mock.Mock
}

func (m *MockCheckoutSink) Record(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
