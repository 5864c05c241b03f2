package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ist is the store timezone used by every settings fixture.
var ist = time.FixedZone("IST", 5*3600+1800)

func TestGetSettingsQueryHandler_HidesCredentials(t *testing.T) {
	s := mustSettings(t, storefront.Patch{UpiID: ptr("kitchen@upi")})
	require.NoError(t, s.SetCredentials("owner", "$2a$10$hash"))

	settings := &MockSettingsReader{}
	settings.On("GetOrCreate", mock.Anything).Return(s, nil)

	view, err := queries.NewGetSettingsQueryHandler(settings).Handle(context.Background(), queries.NewGetSettingsQuery())

	require.NoError(t, err)
	assert.Equal(t, queries.SettingsView{
		StoreName:              "Monisha Kitchen",
		UpiID:                  "kitchen@upi",
		DeliveryRadiusKm:       5,
		LocationLat:            storeLat,
		LocationLng:            storeLng,
		IsOpen:                 true,
		OpenTime:               "10:00",
		CloseTime:              "22:00",
		Timezone:               "Asia/Kolkata",
		HasMerchantCredentials: true,
	}, view)
}

func TestEvaluateAvailabilityQueryHandler(t *testing.T) {
	closed := mustSettings(t, storefront.Patch{IsOpen: ptr(false), OpenTime: ptr("18:00")})

	tests := []struct {
		name  string
		now   time.Time
		state services.AvailabilityState
	}{
		{"fifteen minutes before opening", time.Date(2025, 3, 1, 17, 45, 0, 0, ist), services.PreOrder},
		{"two hours before opening", time.Date(2025, 3, 1, 16, 0, 0, 0, ist), services.Closed},
		{"right after opening time", time.Date(2025, 3, 1, 18, 1, 0, 0, ist), services.Closed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &MockSettingsReader{}
			settings.On("GetOrCreate", mock.Anything).Return(closed, nil)
			handler := queries.NewEvaluateAvailabilityQueryHandler(settings, clock.NewFixed(tt.now))

			availability, err := handler.Handle(context.Background(), queries.NewEvaluateAvailabilityQuery())

			require.NoError(t, err)
			assert.Equal(t, tt.state, availability.State)
		})
	}
}

func TestQuoteCartQueryHandler_UsesProfileLocation(t *testing.T) {
	paneer := mustMenuItem(t, "Paneer", "Starters", 100, true)
	naan := mustMenuItem(t, "Naan", "Breads", 50, true)
	home := mustPoint(t, 3)
	phone := mustPhone(t, "9876543210")

	settings := &MockSettingsReader{}
	settings.On("GetOrCreate", mock.Anything).Return(mustSettings(t, storefront.Patch{}), nil)
	menuReader := &MockMenuReader{}
	menuReader.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{paneer, naan}, nil)
	customers := &MockCustomerReader{}
	customers.On("Get", mock.Anything, phone).Return(mustCustomer(t, "9876543210", &home), nil)

	query, err := queries.NewQuoteCartQuery([]services.CartLine{
		{MenuItemID: paneer.ID(), Quantity: 2},
		{MenuItemID: naan.ID(), Quantity: 1},
	}, &phone, nil)
	require.NoError(t, err)

	quote, err := queries.NewQuoteCartQueryHandler(settings, menuReader, customers).Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(250), quote.Subtotal)
	assert.Equal(t, int64(49), quote.DeliveryFee)
	assert.Equal(t, int64(304), quote.Total)
	require.NotNil(t, quote.DistanceKm)
	assert.InDelta(t, 3.0, *quote.DistanceKm, 0.05)
}

func TestQuoteCartQueryHandler_UnknownPhoneAndDeletedItem(t *testing.T) {
	paneer := mustMenuItem(t, "Paneer", "Starters", 1200, true)
	gone := kernel.NewUUID()
	phone := mustPhone(t, "9876543210")

	settings := &MockSettingsReader{}
	settings.On("GetOrCreate", mock.Anything).Return(mustSettings(t, storefront.Patch{}), nil)
	menuReader := &MockMenuReader{}
	menuReader.On("ListByIDs", mock.Anything, []kernel.UUID{paneer.ID(), gone}).
		Return([]*menu.MenuItem{paneer}, nil)
	customers := &MockCustomerReader{}
	customers.On("Get", mock.Anything, phone).Return(nil, errs.NewObjectNotFoundError("customer", phone.String()))

	query, err := queries.NewQuoteCartQuery([]services.CartLine{
		{MenuItemID: paneer.ID(), Quantity: 1},
		{MenuItemID: gone, Quantity: 3},
	}, &phone, nil)
	require.NoError(t, err)

	quote, err := queries.NewQuoteCartQueryHandler(settings, menuReader, customers).Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(0), quote.DeliveryFee)
	assert.Equal(t, int64(1205), quote.Total)
	assert.Nil(t, quote.DistanceKm)
	assert.Equal(t, []kernel.UUID{gone}, quote.UnresolvedItemIDs)
}

func TestQuoteCartQueryHandler_ExplicitLocationWinsOverProfile(t *testing.T) {
	paneer := mustMenuItem(t, "Paneer", "Starters", 100, true)
	far := mustPoint(t, 12)
	phone := mustPhone(t, "9876543210")

	settings := &MockSettingsReader{}
	settings.On("GetOrCreate", mock.Anything).Return(mustSettings(t, storefront.Patch{}), nil)
	menuReader := &MockMenuReader{}
	menuReader.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{paneer}, nil)
	customers := &MockCustomerReader{}

	query, err := queries.NewQuoteCartQuery([]services.CartLine{{MenuItemID: paneer.ID(), Quantity: 1}}, &phone, &far)
	require.NoError(t, err)

	quote, err := queries.NewQuoteCartQueryHandler(settings, menuReader, customers).Handle(context.Background(), query)

	require.NoError(t, err)
	assert.True(t, quote.IsOutOfRange)
	customers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNewQuoteCartQuery_Rejections(t *testing.T) {
	_, err := queries.NewQuoteCartQuery(nil, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewQuoteCartQuery([]services.CartLine{{MenuItemID: kernel.NewUUID(), Quantity: 0}}, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

type eligibilityFixture struct {
	settings  *MockSettingsReader
	menu      *MockMenuReader
	customers *MockCustomerReader
	clock     *clock.Fixed
	phone     kernel.Phone
}

func newEligibilityFixture(t *testing.T, s *storefront.Settings) eligibilityFixture {
	f := eligibilityFixture{
		settings:  &MockSettingsReader{},
		menu:      &MockMenuReader{},
		customers: &MockCustomerReader{},
		clock:     clock.NewFixed(time.Date(2025, 3, 1, 17, 45, 0, 0, ist)),
		phone:     mustPhone(t, "9876543210"),
	}
	f.settings.On("GetOrCreate", mock.Anything).Return(s, nil)
	return f
}

func (f eligibilityFixture) handle(t *testing.T, action services.Action, itemID *kernel.UUID, lines []services.CartLine) (services.Decision, error) {
	t.Helper()
	query, err := queries.NewCheckEligibilityQuery(f.phone, action, itemID, lines)
	require.NoError(t, err)
	handler := queries.NewCheckEligibilityQueryHandler(f.settings, f.menu, f.customers, f.clock)
	return handler.Handle(context.Background(), query)
}

func TestCheckEligibilityQueryHandler_Increment(t *testing.T) {
	paneer := mustMenuItem(t, "Paneer", "Starters", 100, true)
	soldOut := mustMenuItem(t, "Soup", "Starters", 90, false)

	t.Run("pre-order window allows with notice", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{IsOpen: ptr(false), OpenTime: ptr("18:00")}))
		f.customers.On("Get", mock.Anything, f.phone).Return(mustCustomer(t, "9876543210", nil), nil)
		f.menu.On("ListByIDs", mock.Anything, []kernel.UUID{paneer.ID()}).Return([]*menu.MenuItem{paneer}, nil)

		decision, err := f.handle(t, services.ActionIncrement, ptr(paneer.ID()), nil)

		require.NoError(t, err)
		assert.True(t, decision.IsPreOrder)
		assert.Equal(t, services.PreOrderNotice, decision.Notice)
	})

	t.Run("unknown phone counts as a fresh customer", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{}))
		f.customers.On("Get", mock.Anything, f.phone).Return(nil, errs.NewObjectNotFoundError("customer", "x"))
		f.menu.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{paneer}, nil)

		decision, err := f.handle(t, services.ActionIncrement, ptr(paneer.ID()), nil)

		require.NoError(t, err)
		assert.False(t, decision.IsPreOrder)
	})

	t.Run("blocked account", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{}))
		blocked := mustCustomer(t, "9876543210", nil)
		blocked.ToggleBlock()
		f.customers.On("Get", mock.Anything, f.phone).Return(blocked, nil)

		_, err := f.handle(t, services.ActionIncrement, ptr(paneer.ID()), nil)

		var rejection *services.EligibilityError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, services.ReasonAccountBlocked, rejection.Reason)
		f.menu.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
	})

	t.Run("closed store uses the configured message", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{
			IsOpen: ptr(false), OpenTime: ptr("20:00"), NextOpenMessage: ptr("Back at 8 tonight"),
		}))
		f.customers.On("Get", mock.Anything, f.phone).Return(mustCustomer(t, "9876543210", nil), nil)

		_, err := f.handle(t, services.ActionIncrement, ptr(paneer.ID()), nil)

		require.ErrorIs(t, err, services.ErrStoreClosed)
		assert.Contains(t, err.Error(), "Back at 8 tonight")
	})

	t.Run("switched-off item", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{}))
		f.customers.On("Get", mock.Anything, f.phone).Return(mustCustomer(t, "9876543210", nil), nil)
		f.menu.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{soldOut}, nil)

		_, err := f.handle(t, services.ActionIncrement, ptr(soldOut.ID()), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("deleted item", func(t *testing.T) {
		f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{}))
		f.customers.On("Get", mock.Anything, f.phone).Return(mustCustomer(t, "9876543210", nil), nil)
		f.menu.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{}, nil)

		_, err := f.handle(t, services.ActionIncrement, ptr(kernel.NewUUID()), nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCheckEligibilityQueryHandler_Checkout(t *testing.T) {
	paneer := mustMenuItem(t, "Paneer", "Starters", 100, true)
	lines := []services.CartLine{{MenuItemID: paneer.ID(), Quantity: 2}}

	tests := []struct {
		name     string
		location *kernel.GeoPoint
		reason   error
		message  []string
	}{
		{"no location on profile", nil, services.ErrLocationRequired, nil},
		{"twelve kilometres away", ptr(mustPoint(t, 12)), services.ErrOutOfDeliveryRange, []string{"12.0 km", "5 km"}},
		{"inside the radius", ptr(mustPoint(t, 3)), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEligibilityFixture(t, mustSettings(t, storefront.Patch{}))
			f.customers.On("Get", mock.Anything, f.phone).Return(mustCustomer(t, "9876543210", tt.location), nil)
			f.menu.On("ListByIDs", mock.Anything, mock.Anything).Return([]*menu.MenuItem{paneer}, nil)

			_, err := f.handle(t, services.ActionCheckout, nil, lines)

			if tt.reason == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.reason)
			for _, fragment := range tt.message {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestCheckEligibilityQueryHandler_DecrementIsNeverGated(t *testing.T) {
	f := newEligibilityFixture(t, nil)

	_, err := f.handle(t, services.ActionDecrement, nil, nil)

	require.NoError(t, err)
	f.settings.AssertNotCalled(t, "GetOrCreate", mock.Anything)
	f.customers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestNewCheckEligibilityQuery_Rejections(t *testing.T) {
	phone := mustPhone(t, "9876543210")

	_, err := queries.NewCheckEligibilityQuery(phone, services.Action("teleport"), nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewCheckEligibilityQuery(phone, services.ActionIncrement, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewCheckEligibilityQuery(phone, services.ActionCheckout, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var unconstructed queries.CheckEligibilityQuery
	require.True(t, errors.Is(unconstructed.Validate(), queries.ErrCheckEligibilityQueryIsNotConstructed))
}
