package queries_test

import (
	"context"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/storefront"

	"github.com/stretchr/testify/mock"
)

type MockSettingsReader struct{ mock.Mock }

func (m *MockSettingsReader) GetOrCreate(ctx context.Context) (*storefront.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*storefront.Settings)
	return s, args.Error(1)
}

type MockMenuReader struct{ mock.Mock }

func (m *MockMenuReader) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
