package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation in openapi.yaml.
type ServerInterface interface {
	GetSettings(ctx echo.Context) error
	UpdateSettings(ctx echo.Context) error
	GetAvailability(ctx echo.Context) error

	GetMenu(ctx echo.Context, params GetMenuParams) error
	CreateMenuItem(ctx echo.Context) error
	ImportMenu(ctx echo.Context) error
	GetMenuItem(ctx echo.Context, itemID openapi_types.UUID) error
	UpdateMenuItem(ctx echo.Context, itemID openapi_types.UUID) error
	DeleteMenuItem(ctx echo.Context, itemID openapi_types.UUID) error

	GetCategories(ctx echo.Context, params GetCategoriesParams) error
	SetVisibleCategories(ctx echo.Context) error
	SetCategoryImage(ctx echo.Context, name string) error
	ToggleCategory(ctx echo.Context, name string) error

	GetBanners(ctx echo.Context) error
	CreateBanner(ctx echo.Context) error
	UpdateBanner(ctx echo.Context, bannerID openapi_types.UUID) error
	LinkBannerItem(ctx echo.Context, bannerID openapi_types.UUID, itemID openapi_types.UUID) error
	UnlinkBannerItem(ctx echo.Context, bannerID openapi_types.UUID, itemID openapi_types.UUID) error

	GetReviews(ctx echo.Context, params GetReviewsParams) error
	CreateReview(ctx echo.Context) error
	DeleteReview(ctx echo.Context, reviewID openapi_types.UUID) error

	QuoteCart(ctx echo.Context) error
	CheckEligibility(ctx echo.Context) error

	GetOrders(ctx echo.Context) error
	PlaceOrder(ctx echo.Context) error
	GetActiveOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error

	GetCustomers(ctx echo.Context) error
	GetCustomer(ctx echo.Context, phone string) error
	UpsertCustomer(ctx echo.Context, phone string) error
	GetCustomerOrders(ctx echo.Context, phone string) error
	ToggleCustomerBlock(ctx echo.Context, phone string) error

	MerchantLogin(ctx echo.Context) error
	MerchantLogout(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetSettings(ctx echo.Context) error {
	return w.Handler.GetSettings(ctx)
}

func (w *ServerInterfaceWrapper) UpdateSettings(ctx echo.Context) error {
	return w.Handler.UpdateSettings(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailability(ctx echo.Context) error {
	return w.Handler.GetAvailability(ctx)
}

func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var params GetMenuParams

	if err := runtime.BindQueryParameter("form", true, false, "availableOnly", ctx.QueryParams(), &params.AvailableOnly); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter availableOnly: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	return w.Handler.GetMenu(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) ImportMenu(ctx echo.Context) error {
	return w.Handler.ImportMenu(ctx)
}

func (w *ServerInterfaceWrapper) GetMenuItem(ctx echo.Context) error {
	itemID, err := bindUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.GetMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := bindUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := bindUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) GetCategories(ctx echo.Context) error {
	var params GetCategoriesParams

	if err := runtime.BindQueryParameter("form", true, false, "visibleOnly", ctx.QueryParams(), &params.VisibleOnly); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter visibleOnly: %s", err))
	}

	return w.Handler.GetCategories(ctx, params)
}

func (w *ServerInterfaceWrapper) SetVisibleCategories(ctx echo.Context) error {
	return w.Handler.SetVisibleCategories(ctx)
}

func (w *ServerInterfaceWrapper) SetCategoryImage(ctx echo.Context) error {
	name, err := bindString(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.SetCategoryImage(ctx, name)
}

func (w *ServerInterfaceWrapper) ToggleCategory(ctx echo.Context) error {
	name, err := bindString(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.ToggleCategory(ctx, name)
}

func (w *ServerInterfaceWrapper) GetBanners(ctx echo.Context) error {
	return w.Handler.GetBanners(ctx)
}

func (w *ServerInterfaceWrapper) CreateBanner(ctx echo.Context) error {
	return w.Handler.CreateBanner(ctx)
}

func (w *ServerInterfaceWrapper) UpdateBanner(ctx echo.Context) error {
	bannerID, err := bindUUID(ctx, "bannerId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateBanner(ctx, bannerID)
}

func (w *ServerInterfaceWrapper) LinkBannerItem(ctx echo.Context) error {
	bannerID, err := bindUUID(ctx, "bannerId")
	if err != nil {
		return err
	}
	itemID, err := bindUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.LinkBannerItem(ctx, bannerID, itemID)
}

func (w *ServerInterfaceWrapper) UnlinkBannerItem(ctx echo.Context) error {
	bannerID, err := bindUUID(ctx, "bannerId")
	if err != nil {
		return err
	}
	itemID, err := bindUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.UnlinkBannerItem(ctx, bannerID, itemID)
}

func (w *ServerInterfaceWrapper) GetReviews(ctx echo.Context) error {
	var params GetReviewsParams

	if err := runtime.BindQueryParameter("form", true, false, "menuItemId", ctx.QueryParams(), &params.MenuItemID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter menuItemId: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "orderId", ctx.QueryParams(), &params.OrderID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetReviews(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateReview(ctx echo.Context) error {
	return w.Handler.CreateReview(ctx)
}

func (w *ServerInterfaceWrapper) DeleteReview(ctx echo.Context) error {
	reviewID, err := bindUUID(ctx, "reviewId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteReview(ctx, reviewID)
}

func (w *ServerInterfaceWrapper) QuoteCart(ctx echo.Context) error {
	return w.Handler.QuoteCart(ctx)
}

func (w *ServerInterfaceWrapper) CheckEligibility(ctx echo.Context) error {
	return w.Handler.CheckEligibility(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	return w.Handler.GetCustomers(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	phone, err := bindString(ctx, "phone")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, phone)
}

func (w *ServerInterfaceWrapper) UpsertCustomer(ctx echo.Context) error {
	phone, err := bindString(ctx, "phone")
	if err != nil {
		return err
	}
	return w.Handler.UpsertCustomer(ctx, phone)
}

func (w *ServerInterfaceWrapper) GetCustomerOrders(ctx echo.Context) error {
	phone, err := bindString(ctx, "phone")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomerOrders(ctx, phone)
}

func (w *ServerInterfaceWrapper) ToggleCustomerBlock(ctx echo.Context) error {
	phone, err := bindString(ctx, "phone")
	if err != nil {
		return err
	}
	return w.Handler.ToggleCustomerBlock(ctx, phone)
}

func (w *ServerInterfaceWrapper) MerchantLogin(ctx echo.Context) error {
	return w.Handler.MerchantLogin(ctx)
}

func (w *ServerInterfaceWrapper) MerchantLogout(ctx echo.Context) error {
	return w.Handler.MerchantLogout(ctx)
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL adds every operation to router under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/settings", w.GetSettings)
	router.PATCH(baseURL+"/settings", w.UpdateSettings)
	router.GET(baseURL+"/availability", w.GetAvailability)

	router.GET(baseURL+"/menu", w.GetMenu)
	router.POST(baseURL+"/menu", w.CreateMenuItem)
	router.PUT(baseURL+"/menu", w.ImportMenu)
	router.GET(baseURL+"/menu/:itemId", w.GetMenuItem)
	router.PATCH(baseURL+"/menu/:itemId", w.UpdateMenuItem)
	router.DELETE(baseURL+"/menu/:itemId", w.DeleteMenuItem)

	router.GET(baseURL+"/categories", w.GetCategories)
	router.PUT(baseURL+"/categories", w.SetVisibleCategories)
	router.PUT(baseURL+"/categories/:name", w.SetCategoryImage)
	router.POST(baseURL+"/categories/:name/toggle", w.ToggleCategory)

	router.GET(baseURL+"/banners", w.GetBanners)
	router.POST(baseURL+"/banners", w.CreateBanner)
	router.PATCH(baseURL+"/banners/:bannerId", w.UpdateBanner)
	router.PUT(baseURL+"/banners/:bannerId/items/:itemId", w.LinkBannerItem)
	router.DELETE(baseURL+"/banners/:bannerId/items/:itemId", w.UnlinkBannerItem)

	router.GET(baseURL+"/reviews", w.GetReviews)
	router.POST(baseURL+"/reviews", w.CreateReview)
	router.DELETE(baseURL+"/reviews/:reviewId", w.DeleteReview)

	router.POST(baseURL+"/cart/quote", w.QuoteCart)
	router.POST(baseURL+"/cart/eligibility", w.CheckEligibility)

	router.GET(baseURL+"/orders", w.GetOrders)
	router.POST(baseURL+"/orders", w.PlaceOrder)
	router.GET(baseURL+"/orders/active", w.GetActiveOrders)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.POST(baseURL+"/orders/:orderId/status", w.ChangeOrderStatus)

	router.GET(baseURL+"/customers", w.GetCustomers)
	router.GET(baseURL+"/customers/:phone", w.GetCustomer)
	router.PUT(baseURL+"/customers/:phone", w.UpsertCustomer)
	router.GET(baseURL+"/customers/:phone/orders", w.GetCustomerOrders)
	router.POST(baseURL+"/customers/:phone/block", w.ToggleCustomerBlock)

	router.POST(baseURL+"/merchant/login", w.MerchantLogin)
	router.POST(baseURL+"/merchant/logout", w.MerchantLogout)
}
