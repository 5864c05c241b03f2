package commands_test

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/review"
	"kitchen/internal/core/domain/model/session"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuRepository) ReplaceAll(ctx context.Context, items []*menu.MenuItem) error {
	return m.Called(ctx, items).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context) (*storefront.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*storefront.Settings)
	return s, args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, s *storefront.Settings) error {
	return m.Called(ctx, s).Error(0)
}

type MockBannerRepository struct{ mock.Mock }

func (m *MockBannerRepository) Add(ctx context.Context, b *catalog.Banner) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBannerRepository) Update(ctx context.Context, b *catalog.Banner) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBannerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Banner, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*catalog.Banner)
	return b, args.Error(1)
}

func (m *MockBannerRepository) List(ctx context.Context) ([]*catalog.Banner, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]*catalog.Banner)
	return b, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Get(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*catalog.Category)
	return c, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) Exists(ctx context.Context, orderID, menuItemID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, menuItemID)
	return args.Bool(0), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*session.Session, error) {
	args := m.Called(ctx, tokenHash)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every per-command unit of work. Repository accessors
// return whatever repositories the test wired in.
type MockUoW struct {
	mock.Mock

	orders     *MockOrderRepository
	menu       *MockMenuRepository
	customers  *MockCustomerRepository
	settings   *MockSettingsRepository
	banners    *MockBannerRepository
	categories *MockCategoryRepository
	reviews    *MockReviewRepository
	sessions   *MockSessionRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.menu
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.settings
}

func (m *MockUoW) BannerRepository() ports.BannerRepository {
	return m.banners
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.categories
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.reviews
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	return m.sessions
}

// expectCommitted sets up Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectCommitted(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRolledBack sets up a transaction that never reaches Commit.
func (m *MockUoW) expectRolledBack(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// stubUoWFactory always hands out the same unit of work.
type stubUoWFactory[U any] struct {
	uow U
}

func (f stubUoWFactory[U]) Create() U {
	return f.uow
}
