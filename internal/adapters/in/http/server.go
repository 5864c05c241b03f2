package http

import (
	"errors"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// MerchantTokenHeader carries the merchant session token.
const MerchantTokenHeader = "X-Merchant-Token"

var _ ServerInterface = (*Server)(nil)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	// Command handlers
	PlaceOrder      commands.PlaceOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler
	Menu            commands.MenuCommandHandler
	Customers       commands.CustomerCommandHandler
	Settings        commands.SettingsCommandHandler
	Banners         commands.BannerCommandHandler
	Categories      commands.CategoryCommandHandler
	Reviews         commands.ReviewCommandHandler
	Sessions        commands.SessionCommandHandler

	// Query handlers
	GetOrders            queries.GetOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetCustomers         queries.GetCustomersQueryHandler
	GetCustomer          queries.GetCustomerQueryHandler
	GetMenu              queries.GetMenuQueryHandler
	GetMenuItem          queries.GetMenuItemQueryHandler
	GetBanners           queries.GetBannersQueryHandler
	GetCategories        queries.GetCategoriesQueryHandler
	GetReviews           queries.GetReviewsQueryHandler
	GetSettings          queries.GetSettingsQueryHandler
	EvaluateAvailability queries.EvaluateAvailabilityQueryHandler
	QuoteCart            queries.QuoteCartQueryHandler
	CheckEligibility     queries.CheckEligibilityQueryHandler
	AuthenticateMerchant queries.AuthenticateMerchantQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
// Handler errors are returned as-is and rendered by ErrorHandler.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// GetSettings handles GET /settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	view, err := s.h.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settingsFromView(view))
}

// UpdateSettings handles PATCH /settings.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var body SettingsPatch
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	patch := storefront.Patch{
		StoreName:        body.StoreName,
		UpiID:            body.UpiID,
		DeliveryRadiusKm: body.DeliveryRadiusKm,
		IsOpen:           body.IsOpen,
		OpenTime:         body.OpenTime,
		CloseTime:        body.CloseTime,
		NextOpenMessage:  body.NextOpenMessage,
		Timezone:         body.Timezone,
	}
	if body.Location != nil {
		patch.LocationLat = &body.Location.Lat
		patch.LocationLng = &body.Location.Lng
	}

	updated, err := s.h.Settings.Update(ctx.Request().Context(), commands.NewUpdateSettingsCommand(patch))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settingsFromAggregate(updated))
}

// GetAvailability handles GET /availability.
func (s *Server) GetAvailability(ctx echo.Context) error {
	availability, err := s.h.EvaluateAvailability.Handle(ctx.Request().Context(), queries.NewEvaluateAvailabilityQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, availabilityFrom(availability))
}

// GetMenu handles GET /menu.
func (s *Server) GetMenu(ctx echo.Context, params GetMenuParams) error {
	availableOnly := params.AvailableOnly != nil && *params.AvailableOnly
	category := ""
	if params.Category != nil {
		category = *params.Category
	}

	items, err := s.h.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery(availableOnly, category))
	if err != nil {
		return err
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = menuItemFromView(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), body.details())
	if err != nil {
		return err
	}
	created, err := s.h.Menu.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondMenuItem(ctx, http.StatusCreated, created.ID())
}

// ImportMenu handles PUT /menu.
func (s *Server) ImportMenu(ctx echo.Context) error {
	var body MenuImport
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	entries := make([]menu.Details, len(body.Items))
	for i, item := range body.Items {
		entries[i] = item.details()
	}

	cmd, err := commands.NewImportMenuCommand(entries)
	if err != nil {
		return err
	}
	imported, err := s.h.Menu.Import(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ImportResult{Imported: imported})
}

// GetMenuItem handles GET /menu/{itemId}.
func (s *Server) GetMenuItem(ctx echo.Context, itemID openapi_types.UUID) error {
	id, err := toKernelID(itemID)
	if err != nil {
		return err
	}
	return s.respondMenuItem(ctx, http.StatusOK, id)
}

// UpdateMenuItem handles PATCH /menu/{itemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, itemID openapi_types.UUID) error {
	id, err := toKernelID(itemID)
	if err != nil {
		return err
	}

	var body MenuItemPatch
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	patch := menu.Patch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
		Category:    body.Category,
		IsVeg:       body.IsVeg,
		Available:   body.Available,
	}
	if body.OriginalPrice.Set {
		if body.OriginalPrice.Null {
			patch.ClearOriginal = true
		} else {
			patch.OriginalPrice = &body.OriginalPrice.Value
		}
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, patch)
	if err != nil {
		return err
	}
	if _, err = s.h.Menu.Update(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondMenuItem(ctx, http.StatusOK, id)
}

// DeleteMenuItem handles DELETE /menu/{itemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, itemID openapi_types.UUID) error {
	id, err := toKernelID(itemID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.Menu.Delete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCategories handles GET /categories.
func (s *Server) GetCategories(ctx echo.Context, params GetCategoriesParams) error {
	visibleOnly := params.VisibleOnly != nil && *params.VisibleOnly

	categories, err := s.h.GetCategories.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery(visibleOnly))
	if err != nil {
		return err
	}

	response := make([]Category, len(categories))
	for i, c := range categories {
		response[i] = categoryFromView(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetVisibleCategories handles PUT /categories.
func (s *Server) SetVisibleCategories(ctx echo.Context) error {
	var body VisibleCategories
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	if err := s.h.Categories.SetVisible(ctx.Request().Context(), commands.NewSetVisibleCategoriesCommand(body.Names)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetCategoryImage handles PUT /categories/{name}.
func (s *Server) SetCategoryImage(ctx echo.Context, name string) error {
	var body CategoryImage
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetCategoryImageCommand(name, body.Image, body.Visible)
	if err != nil {
		return err
	}
	saved, err := s.h.Categories.SetImage(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondCategory(ctx, saved)
}

// ToggleCategory handles POST /categories/{name}/toggle.
func (s *Server) ToggleCategory(ctx echo.Context, name string) error {
	cmd, err := commands.NewToggleCategoryCommand(name)
	if err != nil {
		return err
	}
	toggled, err := s.h.Categories.Toggle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondCategory(ctx, toggled)
}

// GetBanners handles GET /banners. The default banners are stored on the
// first read of an empty table.
func (s *Server) GetBanners(ctx echo.Context) error {
	if _, err := s.h.Banners.SeedDefaults(ctx.Request().Context()); err != nil {
		return err
	}

	banners, err := s.h.GetBanners.Handle(ctx.Request().Context(), queries.NewGetBannersQuery())
	if err != nil {
		return err
	}

	response := make([]Banner, len(banners))
	for i, b := range banners {
		response[i] = Banner{
			ID:            b.ID.Bytes(),
			Title:         b.Title,
			Subtitle:      b.Subtitle,
			CTA:           b.CTA,
			Image:         b.Image,
			Gradient:      b.Gradient,
			LinkedItemIDs: toWireIDs(b.LinkedItemIDs),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateBanner handles POST /banners.
func (s *Server) CreateBanner(ctx echo.Context) error {
	var body NewBanner
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateBannerCommand(kernel.NewUUID(), catalog.BannerContent{
		Title:    body.Title,
		Subtitle: body.Subtitle,
		CTA:      body.CTA,
		Image:    body.Image,
		Gradient: body.Gradient,
	})
	if err != nil {
		return err
	}
	created, err := s.h.Banners.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, bannerFromAggregate(created))
}

// UpdateBanner handles PATCH /banners/{bannerId}.
func (s *Server) UpdateBanner(ctx echo.Context, bannerID openapi_types.UUID) error {
	id, err := toKernelID(bannerID)
	if err != nil {
		return err
	}

	var body BannerPatch
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBannerCommand(id, catalog.BannerPatch{
		Title:    body.Title,
		Subtitle: body.Subtitle,
		CTA:      body.CTA,
		Image:    body.Image,
		Gradient: body.Gradient,
	})
	if err != nil {
		return err
	}
	updated, err := s.h.Banners.Update(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bannerFromAggregate(updated))
}

// LinkBannerItem handles PUT /banners/{bannerId}/items/{itemId}.
func (s *Server) LinkBannerItem(ctx echo.Context, bannerID openapi_types.UUID, itemID openapi_types.UUID) error {
	cmd, err := bannerItemCommand(bannerID, itemID)
	if err != nil {
		return err
	}
	linked, err := s.h.Banners.LinkItem(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bannerFromAggregate(linked))
}

// UnlinkBannerItem handles DELETE /banners/{bannerId}/items/{itemId}.
func (s *Server) UnlinkBannerItem(ctx echo.Context, bannerID openapi_types.UUID, itemID openapi_types.UUID) error {
	cmd, err := bannerItemCommand(bannerID, itemID)
	if err != nil {
		return err
	}
	unlinked, err := s.h.Banners.UnlinkItem(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bannerFromAggregate(unlinked))
}

// GetReviews handles GET /reviews. menuItemId wins when both filters are given.
func (s *Server) GetReviews(ctx echo.Context, params GetReviewsParams) error {
	query := queries.NewGetReviewsQuery()
	switch {
	case params.MenuItemID != nil:
		id, err := toKernelID(*params.MenuItemID)
		if err != nil {
			return err
		}
		if query, err = queries.NewGetItemReviewsQuery(id); err != nil {
			return err
		}
	case params.OrderID != nil:
		id, err := toKernelID(*params.OrderID)
		if err != nil {
			return err
		}
		if query, err = queries.NewGetOrderReviewsQuery(id); err != nil {
			return err
		}
	}

	reviews, err := s.h.GetReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Review, len(reviews))
	for i, r := range reviews {
		response[i] = Review{
			ID:            r.ID.Bytes(),
			OrderID:       r.OrderID.Bytes(),
			MenuItemID:    r.MenuItemID.Bytes(),
			CustomerPhone: r.CustomerPhone,
			CustomerName:  r.CustomerName,
			Stars:         r.Stars,
			Comment:       r.Comment,
			CreatedAt:     r.CreatedAt.UTC(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateReview handles POST /reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	var body NewReview
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(body.Phone)
	if err != nil {
		return err
	}
	orderID, err := toKernelID(body.OrderID)
	if err != nil {
		return err
	}
	menuItemID, err := toKernelID(body.MenuItemID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), orderID, menuItemID, phone, body.Stars, body.Comment)
	if err != nil {
		return err
	}
	created, err := s.h.Reviews.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Review{
		ID:            created.ID().Bytes(),
		OrderID:       created.OrderID().Bytes(),
		MenuItemID:    created.MenuItemID().Bytes(),
		CustomerPhone: created.CustomerPhone().String(),
		CustomerName:  created.CustomerName(),
		Stars:         created.Stars(),
		Comment:       created.Comment(),
		CreatedAt:     created.CreatedAt().UTC(),
	})
}

// DeleteReview handles DELETE /reviews/{reviewId}.
func (s *Server) DeleteReview(ctx echo.Context, reviewID openapi_types.UUID) error {
	id, err := toKernelID(reviewID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteReviewCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.Reviews.Delete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// QuoteCart handles POST /cart/quote.
func (s *Server) QuoteCart(ctx echo.Context) error {
	var body QuoteRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	lines, err := toCartLines(body.Items)
	if err != nil {
		return err
	}

	var phone *kernel.Phone
	if body.Phone != nil {
		p, phoneErr := kernel.NewPhone(*body.Phone)
		if phoneErr != nil {
			return phoneErr
		}
		phone = &p
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, pointErr := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if pointErr != nil {
			return pointErr
		}
		location = &point
	}

	query, err := queries.NewQuoteCartQuery(lines, phone, location)
	if err != nil {
		return err
	}
	quote, err := s.h.QuoteCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quoteFrom(quote))
}

// CheckEligibility handles POST /cart/eligibility. Business rejections are a
// normal answer here, so they come back as 200 with allow=false.
func (s *Server) CheckEligibility(ctx echo.Context) error {
	var body EligibilityRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(body.Phone)
	if err != nil {
		return err
	}
	action, err := services.ParseAction(body.Action)
	if err != nil {
		return err
	}

	var itemID *kernel.UUID
	if body.ItemID != nil {
		id, idErr := toKernelID(*body.ItemID)
		if idErr != nil {
			return idErr
		}
		itemID = &id
	}

	var lines []services.CartLine
	if len(body.Items) > 0 {
		if lines, err = toCartLines(body.Items); err != nil {
			return err
		}
	}

	query, err := queries.NewCheckEligibilityQuery(phone, action, itemID, lines)
	if err != nil {
		return err
	}

	decision, err := s.h.CheckEligibility.Handle(ctx.Request().Context(), query)
	var rejection *services.EligibilityError
	if errors.As(err, &rejection) {
		return ctx.JSON(http.StatusOK, EligibilityResult{
			Allow:   false,
			Reason:  string(rejection.Reason),
			Message: rejection.Message,
		})
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, EligibilityResult{
		Allow:      true,
		IsPreOrder: decision.IsPreOrder,
		Notice:     decision.Notice,
	})
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.respondOrders(ctx, queries.NewGetOrdersQuery())
}

// PlaceOrder handles POST /orders. The order id is generated here.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body PlaceOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(body.Phone)
	if err != nil {
		return err
	}
	lines, err := toCartLines(body.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), phone, lines, body.Address, body.TransactionRef)
	if err != nil {
		return err
	}
	result, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{
		Order:  orderFromAggregate(result.Order),
		Notice: result.Notice,
	})
}

// GetActiveOrders handles GET /orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	return s.respondOrders(ctx, queries.NewGetActiveOrdersQuery())
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// ChangeOrderStatus handles POST /orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return err
	}

	var body StatusChange
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(id, order.Status(body.Status))
	if err != nil {
		return err
	}
	changed, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromAggregate(changed))
}

// GetCustomers handles GET /customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.h.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return err
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = customerFromView(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /customers/{phone}.
func (s *Server) GetCustomer(ctx echo.Context, phone string) error {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerQuery(p)
	if err != nil {
		return err
	}
	view, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customerFromView(view))
}

// UpsertCustomer handles PUT /customers/{phone}. Absent fields keep their
// stored values.
func (s *Server) UpsertCustomer(ctx echo.Context, phone string) error {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}

	var body CustomerProfile
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	profile := customer.Profile{Name: body.Name, Address: body.Address}
	if body.Location != nil {
		point, pointErr := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if pointErr != nil {
			return pointErr
		}
		profile.Location = &point
	}

	cmd, err := commands.NewUpsertCustomerCommand(p, profile)
	if err != nil {
		return err
	}
	saved, err := s.h.Customers.Upsert(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customerFromAggregate(saved))
}

// GetCustomerOrders handles GET /customers/{phone}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, phone string) error {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(p)
	if err != nil {
		return err
	}
	return s.respondOrders(ctx, query)
}

// ToggleCustomerBlock handles POST /customers/{phone}/block.
func (s *Server) ToggleCustomerBlock(ctx echo.Context, phone string) error {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleCustomerBlockCommand(p)
	if err != nil {
		return err
	}
	blocked, err := s.h.Customers.ToggleBlock(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, BlockState{IsBlocked: blocked})
}

// MerchantLogin handles POST /merchant/login.
func (s *Server) MerchantLogin(ctx echo.Context) error {
	var body LoginRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Username, body.Password)
	if err != nil {
		return err
	}
	result, err := s.h.Sessions.Login(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Session{Token: result.Token, ExpiresAt: result.ExpiresAt.UTC()})
}

// MerchantLogout handles POST /merchant/logout.
func (s *Server) MerchantLogout(ctx echo.Context) error {
	cmd, err := commands.NewLogoutCommand(ctx.Request().Header.Get(MerchantTokenHeader))
	if err != nil {
		return err
	}
	if err = s.h.Sessions.Logout(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondMenuItem(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, menuItemFromView(view))
}

// respondCategory renders c with its item count from the read model.
func (s *Server) respondCategory(ctx echo.Context, c *catalog.Category) error {
	views, err := s.h.GetCategories.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery(false))
	if err != nil {
		return err
	}
	for _, v := range views {
		if v.Name == c.Name() {
			return ctx.JSON(http.StatusOK, categoryFromView(v))
		}
	}
	return ctx.JSON(http.StatusOK, Category{Name: c.Name(), Image: c.Image(), Visible: c.IsVisible()})
}

func (s *Server) respondOrders(ctx echo.Context, query queries.GetOrdersQuery) error {
	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromView(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

func bannerItemCommand(bannerID, itemID openapi_types.UUID) (commands.BannerItemCommand, error) {
	banner, err := toKernelID(bannerID)
	if err != nil {
		return commands.BannerItemCommand{}, err
	}
	item, err := toKernelID(itemID)
	if err != nil {
		return commands.BannerItemCommand{}, err
	}
	return commands.NewBannerItemCommand(banner, item)
}
