package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"kitchen/cmd"
	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/postgres/dbtest"
	"kitchen/internal/adapters/out/telegram"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/clock"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	merchantUser     = "monisha"
	merchantPassword = "s3cret-pass"
	customerPhone    = "9876543210"
)

type ServerSuite struct {
	suite.Suite

	db    *gorm.DB
	clock *clock.Fixed
	root  cmd.CompositionRoot
	echo  *echo.Echo
	token string
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.db = dbtest.SQLite(s.T())
	s.clock = clock.NewFixed(time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC))
	s.boot()
}

func (s *ServerSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(s.root.Close(ctx))
}

// boot wires the application over the suite database and logs in as the merchant.
func (s *ServerSuite) boot(notifiers ...ports.EventPublisher) {
	config := cmd.Config{
		HTTPPort:      "0",
		SessionTTL:    time.Hour,
		StoreTimezone: "Asia/Kolkata",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.root = cmd.NewCompositionRoot(config, s.db, logger, s.clock, notifiers...)

	setCmd, err := commands.NewSetMerchantCredentialsCommand(merchantUser, merchantPassword)
	s.Require().NoError(err)
	s.Require().NoError(s.root.CreateSettingsCommandHandler().SetCredentials(context.Background(), setCmd))

	s.echo, err = s.root.CreateEcho()
	s.Require().NoError(err)

	var session httpin.Session
	rec := s.do(http.MethodPost, "/api/v1/merchant/login",
		httpin.LoginRequest{Username: merchantUser, Password: merchantPassword}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &session)
	s.Require().NotEmpty(session.Token)
	s.token = session.Token
}

func (s *ServerSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(httpin.MerchantTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, dest any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (s *ServerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body httpin.Error
	s.decode(rec, &body)
	return body.Code
}

func (s *ServerSuite) createMenuItem(name string, price int64) httpin.MenuItem {
	rec := s.do(http.MethodPost, "/api/v1/menu", httpin.NewMenuItem{
		Name:     name,
		Price:    price,
		Category: "Starters",
		IsVeg:    true,
	}, s.token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var item httpin.MenuItem
	s.decode(rec, &item)
	return item
}

func (s *ServerSuite) registerCustomer() {
	name := "Asha"
	address := "12 Janpath"
	rec := s.do(http.MethodPut, "/api/v1/customers/"+customerPhone, httpin.CustomerProfile{
		Name:     &name,
		Address:  &address,
		Location: &httpin.GeoPoint{Lat: 28.6139, Lng: 77.2090},
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *ServerSuite) placeOrder(itemID openapi_types.UUID, quantity int) httpin.PlacedOrder {
	rec := s.do(http.MethodPost, "/api/v1/orders", httpin.PlaceOrderRequest{
		Phone: customerPhone,
		Items: []httpin.CartLine{{MenuItemID: itemID, Quantity: quantity}},
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var placed httpin.PlacedOrder
	s.decode(rec, &placed)
	return placed
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerSuite) TestPublicSettingsHideCredentials() {
	rec := s.do(http.MethodGet, "/api/v1/settings", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var settings httpin.Settings
	s.decode(rec, &settings)
	s.Equal("Monisha Kitchen", settings.StoreName)
	s.Equal("Asia/Kolkata", settings.Timezone)
	s.True(settings.HasMerchantCredentials)
	s.NotContains(rec.Body.String(), "password")
}

func (s *ServerSuite) TestMerchantRoutesRequireToken() {
	rec := s.do(http.MethodGet, "/api/v1/orders", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(httpin.CodeUnauthorized, s.errorCode(rec))

	rec = s.do(http.MethodGet, "/api/v1/orders", nil, "not-a-session")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/orders", nil, s.token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestSessionExpires() {
	s.clock.Advance(2 * time.Hour)

	rec := s.do(http.MethodGet, "/api/v1/customers", nil, s.token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerSuite) TestLogoutRevokesToken() {
	rec := s.do(http.MethodPost, "/api/v1/merchant/logout", nil, s.token)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/customers", nil, s.token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerSuite) TestLoginWithWrongPassword() {
	rec := s.do(http.MethodPost, "/api/v1/merchant/login",
		httpin.LoginRequest{Username: merchantUser, Password: "wrong"}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerSuite) TestRequestBodyIsValidatedAgainstSchema() {
	rec := s.do(http.MethodPost, "/api/v1/menu", map[string]any{"name": "Samosa", "price": "cheap"}, s.token)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(httpin.CodeValidation, s.errorCode(rec))
}

func (s *ServerSuite) TestUnknownMenuItem() {
	rec := s.do(http.MethodGet, "/api/v1/menu/7c9e6679-7425-40de-944b-e07fc1f90ae7", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(httpin.CodeNotFound, s.errorCode(rec))
}

func (s *ServerSuite) TestMenuPatchClearsOriginalPrice() {
	item := s.createMenuItem("Paneer Tikka", 125)

	rec := s.do(http.MethodPatch, "/api/v1/menu/"+item.ID.String(),
		map[string]any{"originalPrice": 150}, s.token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var patched httpin.MenuItem
	s.decode(rec, &patched)
	s.Require().NotNil(patched.OriginalPrice)
	s.Equal(int64(150), *patched.OriginalPrice)

	rec = s.do(http.MethodPatch, "/api/v1/menu/"+item.ID.String(),
		map[string]any{"originalPrice": nil}, s.token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var cleared httpin.MenuItem
	s.decode(rec, &cleared)
	s.Nil(cleared.OriginalPrice)
	s.Equal(int64(125), cleared.Price)
}

func (s *ServerSuite) TestQuoteAndEligibility() {
	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()

	phone := customerPhone
	rec := s.do(http.MethodPost, "/api/v1/cart/quote", httpin.QuoteRequest{
		Items: []httpin.CartLine{{MenuItemID: item.ID, Quantity: 2}},
		Phone: &phone,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var quote httpin.Quote
	s.decode(rec, &quote)
	s.Equal(int64(250), quote.Subtotal)
	s.Equal(int64(49), quote.DeliveryFee)
	s.Equal(int64(5), quote.PlatformFee)
	s.Equal(int64(304), quote.Total)
	s.False(quote.IsOutOfRange)

	rec = s.do(http.MethodPost, "/api/v1/cart/eligibility", httpin.EligibilityRequest{
		Phone:  customerPhone,
		Action: "checkout",
		Items:  []httpin.CartLine{{MenuItemID: item.ID, Quantity: 2}},
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var decision httpin.EligibilityResult
	s.decode(rec, &decision)
	s.True(decision.Allow)
}

func (s *ServerSuite) TestEligibilityRejectsBlockedCustomer() {
	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()

	rec := s.do(http.MethodPost, "/api/v1/customers/"+customerPhone+"/block", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var state httpin.BlockState
	s.decode(rec, &state)
	s.True(state.IsBlocked)

	rec = s.do(http.MethodPost, "/api/v1/cart/eligibility", httpin.EligibilityRequest{
		Phone:  customerPhone,
		Action: "increment",
		ItemID: &item.ID,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var decision httpin.EligibilityResult
	s.decode(rec, &decision)
	s.False(decision.Allow)
	s.Equal("ACCOUNT_BLOCKED", decision.Reason)

	rec = s.do(http.MethodPost, "/api/v1/orders", httpin.PlaceOrderRequest{
		Phone: customerPhone,
		Items: []httpin.CartLine{{MenuItemID: item.ID, Quantity: 1}},
	}, "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("ACCOUNT_BLOCKED", s.errorCode(rec))
}

func (s *ServerSuite) TestOrderLifecycle() {
	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()

	placed := s.placeOrder(item.ID, 2)
	s.Equal("pending_payment", placed.Order.Status)
	s.Equal("Asha", placed.Order.CustomerName)
	s.Equal("12 Janpath", placed.Order.Address)
	s.Equal(int64(304), placed.Order.Total)
	s.False(placed.Order.IsPreOrder)

	orderPath := "/api/v1/orders/" + placed.Order.ID.String()

	rec := s.do(http.MethodGet, orderPath, nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/orders/active", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var active []httpin.Order
	s.decode(rec, &active)
	s.Len(active, 1)

	for _, status := range []string{"preparing", "ready", "on_the_way", "delivered"} {
		rec = s.do(http.MethodPost, orderPath+"/status", httpin.StatusChange{Status: status}, s.token)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, orderPath+"/status", httpin.StatusChange{Status: "preparing"}, s.token)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(httpin.CodeInvalidTransition, s.errorCode(rec))

	rec = s.do(http.MethodGet, "/api/v1/orders/active", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &active)
	s.Empty(active)

	rec = s.do(http.MethodGet, "/api/v1/customers/"+customerPhone+"/orders", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var history []httpin.Order
	s.decode(rec, &history)
	s.Require().Len(history, 1)
	s.Equal("delivered", history[0].Status)
}

func (s *ServerSuite) TestOrderKeepsPricesAfterMenuEdit() {
	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()
	placed := s.placeOrder(item.ID, 2)
	s.Require().Equal(int64(304), placed.Order.Total)

	rec := s.do(http.MethodPatch, "/api/v1/menu/"+item.ID.String(), map[string]any{"price": 999}, s.token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/orders/"+placed.Order.ID.String(), nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var stored httpin.Order
	s.decode(rec, &stored)
	s.Require().Len(stored.Items, 1)
	s.Equal(int64(125), stored.Items[0].Price)
	s.Equal(int64(250), stored.Subtotal)
	s.Equal(int64(304), stored.Total)
}

func (s *ServerSuite) TestOrderTimesAreUTC() {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	s.Require().NoError(err)
	s.clock.Set(time.Date(2025, 3, 1, 12, 30, 0, 0, kolkata))

	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()

	rec := s.do(http.MethodPost, "/api/v1/orders", httpin.PlaceOrderRequest{
		Phone: customerPhone,
		Items: []httpin.CartLine{{MenuItemID: item.ID, Quantity: 1}},
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"createdAt":"2025-03-01T07:00:00Z"`)

	var placed httpin.PlacedOrder
	s.decode(rec, &placed)
	rec = s.do(http.MethodGet, "/api/v1/orders/"+placed.Order.ID.String(), nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"createdAt":"2025-03-01T07:00:00Z"`)
}

func (s *ServerSuite) TestUnregisteredPhoneNeedsLocation() {
	item := s.createMenuItem("Paneer Tikka", 125)
	cart := []httpin.CartLine{{MenuItemID: item.ID, Quantity: 1}}

	rec := s.do(http.MethodPost, "/api/v1/cart/eligibility", httpin.EligibilityRequest{
		Phone:  customerPhone,
		Action: "checkout",
		Items:  cart,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var decision httpin.EligibilityResult
	s.decode(rec, &decision)
	s.False(decision.Allow)
	s.Equal("LOCATION_REQUIRED", decision.Reason)

	rec = s.do(http.MethodPost, "/api/v1/orders", httpin.PlaceOrderRequest{Phone: customerPhone, Items: cart}, "")
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("LOCATION_REQUIRED", s.errorCode(rec))

	rec = s.do(http.MethodGet, "/api/v1/orders", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var orders []httpin.Order
	s.decode(rec, &orders)
	s.Empty(orders)
}

// stalledSender holds every Telegram send until released.
type stalledSender struct {
	release func()
	gate    chan struct{}
	sent    chan tgbotapi.MessageConfig
}

func newStalledSender() *stalledSender {
	gate := make(chan struct{})
	var once sync.Once
	return &stalledSender{
		gate:    gate,
		release: func() { once.Do(func() { close(gate) }) },
		sent:    make(chan tgbotapi.MessageConfig, 8),
	}
}

func (s *stalledSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	<-s.gate
	s.sent <- c.(tgbotapi.MessageConfig)
	return tgbotapi.Message{}, nil
}

func (s *ServerSuite) TestPlaceOrderDoesNotWaitForTelegram() {
	sender := newStalledSender()
	s.Require().NoError(s.root.Close(context.Background()))
	s.boot(telegram.NewNotifier(sender, 42, nil, nil))
	time.AfterFunc(2*time.Second, sender.release)

	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()

	start := time.Now()
	placed := s.placeOrder(item.ID, 1)
	s.Less(time.Since(start), time.Second, "checkout must not block on the notification")

	sender.release()
	select {
	case msg := <-sender.sent:
		s.Equal(int64(42), msg.ChatID)
		s.Contains(msg.Text, "New order #"+placed.Order.ID.String()[:8])
	case <-time.After(2 * time.Second):
		s.Fail("notification was not delivered")
	}
}

func (s *ServerSuite) TestReviewAfterDelivery() {
	item := s.createMenuItem("Paneer Tikka", 125)
	s.registerCustomer()
	placed := s.placeOrder(item.ID, 1)

	review := httpin.NewReview{
		OrderID:    placed.Order.ID,
		MenuItemID: item.ID,
		Phone:      customerPhone,
		Stars:      5,
		Comment:    "Loved it",
	}

	rec := s.do(http.MethodPost, "/api/v1/reviews", review, "")
	s.Equal(http.StatusForbidden, rec.Code, "order is not delivered yet")
	s.Equal(httpin.CodeForbidden, s.errorCode(rec))

	orderPath := "/api/v1/orders/" + placed.Order.ID.String()
	for _, status := range []string{"preparing", "ready", "on_the_way", "delivered"} {
		rec = s.do(http.MethodPost, orderPath+"/status", httpin.StatusChange{Status: status}, s.token)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = s.do(http.MethodPost, "/api/v1/reviews", review, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/reviews", review, "")
	s.Equal(http.StatusConflict, rec.Code, "one review per order item")

	rec = s.do(http.MethodGet, "/api/v1/menu/"+item.ID.String(), nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var rated httpin.MenuItem
	s.decode(rec, &rated)
	s.Equal(1, rated.ReviewCount)
	s.Require().NotNil(rated.Rating)
	s.InDelta(5.0, *rated.Rating, 0.001)
}

func (s *ServerSuite) TestBannersAreSeededOnFirstRead() {
	rec := s.do(http.MethodGet, "/api/v1/banners", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var banners []httpin.Banner
	s.decode(rec, &banners)
	s.Len(banners, 3)

	item := s.createMenuItem("Paneer Tikka", 125)
	rec = s.do(http.MethodPut,
		"/api/v1/banners/"+banners[0].ID.String()+"/items/"+item.ID.String(), nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var linked httpin.Banner
	s.decode(rec, &linked)
	s.Equal([]string{item.ID.String()}, uuidStrings(linked.LinkedItemIDs))
}

func (s *ServerSuite) TestCategoryToggleCreatesVisibleRow() {
	s.createMenuItem("Paneer Tikka", 125)

	rec := s.do(http.MethodPost, "/api/v1/categories/Starters/toggle", nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var category httpin.Category
	s.decode(rec, &category)
	s.Equal("Starters", category.Name)
	s.Equal(1, category.ItemCount)
}

func (s *ServerSuite) TestSwaggerDocIsServed() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/orders/{orderId}/status")
}

func TestLoadSpec(t *testing.T) {
	doc, err := httpin.LoadSpec()
	require.NoError(t, err)

	assert.Equal(t, httpin.BasePath, doc.Servers[0].URL)
	assert.NotNil(t, doc.Paths.Find("/orders/{orderId}/status"))
	assert.Contains(t, doc.Components.SecuritySchemes, "merchantToken")
}

func uuidStrings[T interface{ String() string }](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
