package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types mirroring the schemas in openapi.yaml.

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Settings struct {
	StoreName              string   `json:"storeName"`
	UpiID                  string   `json:"upiId"`
	DeliveryRadiusKm       float64  `json:"deliveryRadiusKm"`
	Location               GeoPoint `json:"location"`
	IsOpen                 bool     `json:"isOpen"`
	OpenTime               string   `json:"openTime"`
	CloseTime              string   `json:"closeTime"`
	NextOpenMessage        string   `json:"nextOpenMessage"`
	Timezone               string   `json:"timezone"`
	HasMerchantCredentials bool     `json:"hasMerchantCredentials"`
}

type SettingsPatch struct {
	StoreName        *string   `json:"storeName,omitempty"`
	UpiID            *string   `json:"upiId,omitempty"`
	DeliveryRadiusKm *float64  `json:"deliveryRadiusKm,omitempty"`
	Location         *GeoPoint `json:"location,omitempty"`
	IsOpen           *bool     `json:"isOpen,omitempty"`
	OpenTime         *string   `json:"openTime,omitempty"`
	CloseTime        *string   `json:"closeTime,omitempty"`
	NextOpenMessage  *string   `json:"nextOpenMessage,omitempty"`
	Timezone         *string   `json:"timezone,omitempty"`
}

type Availability struct {
	State            string     `json:"state"`
	AcceptsOrders    bool       `json:"acceptsOrders"`
	NextOpenAt       *time.Time `json:"nextOpenAt,omitempty"`
	MinutesUntilOpen int        `json:"minutesUntilOpen"`
	Message          string     `json:"message"`
}

type MenuItem struct {
	ID            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         int64              `json:"price"`
	OriginalPrice *int64             `json:"originalPrice,omitempty"`
	Image         string             `json:"image"`
	Category      string             `json:"category"`
	IsVeg         bool               `json:"isVeg"`
	Available     bool               `json:"available"`
	Rating        *float64           `json:"rating,omitempty"`
	ReviewCount   int                `json:"reviewCount"`
}

type NewMenuItem struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	IsVeg         bool   `json:"isVeg"`
	// Available defaults to true when omitted.
	Available *bool `json:"available,omitempty"`
}

// MenuItemPatch distinguishes an absent originalPrice from an explicit null,
// which clears it.
type MenuItemPatch struct {
	Name          *string         `json:"name,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Price         *int64          `json:"price,omitempty"`
	OriginalPrice Nullable[int64] `json:"originalPrice"`
	Image         *string         `json:"image,omitempty"`
	Category      *string         `json:"category,omitempty"`
	IsVeg         *bool           `json:"isVeg,omitempty"`
	Available     *bool           `json:"available,omitempty"`
}

type MenuImport struct {
	Items []NewMenuItem `json:"items"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type Category struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Visible   bool   `json:"visible"`
	ItemCount int    `json:"itemCount"`
}

type CategoryImage struct {
	Image   string `json:"image"`
	Visible *bool  `json:"visible,omitempty"`
}

type VisibleCategories struct {
	Names []string `json:"names"`
}

type Banner struct {
	ID            openapi_types.UUID   `json:"id"`
	Title         string               `json:"title"`
	Subtitle      string               `json:"subtitle"`
	CTA           string               `json:"cta"`
	Image         string               `json:"image"`
	Gradient      string               `json:"gradient"`
	LinkedItemIDs []openapi_types.UUID `json:"linkedItemIds"`
}

type NewBanner struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	Image    string `json:"image"`
	Gradient string `json:"gradient"`
}

type BannerPatch struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	CTA      *string `json:"cta,omitempty"`
	Image    *string `json:"image,omitempty"`
	Gradient *string `json:"gradient,omitempty"`
}

type Review struct {
	ID            openapi_types.UUID `json:"id"`
	OrderID       openapi_types.UUID `json:"orderId"`
	MenuItemID    openapi_types.UUID `json:"menuItemId"`
	CustomerPhone string             `json:"customerPhone"`
	CustomerName  string             `json:"customerName"`
	Stars         int                `json:"stars"`
	Comment       string             `json:"comment"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type NewReview struct {
	OrderID    openapi_types.UUID `json:"orderId"`
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Phone      string             `json:"phone"`
	Stars      int                `json:"stars"`
	Comment    string             `json:"comment"`
}

type CartLine struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Quantity   int                `json:"quantity"`
}

type QuoteRequest struct {
	Items    []CartLine `json:"items"`
	Phone    *string    `json:"phone,omitempty"`
	Location *GeoPoint  `json:"location,omitempty"`
}

type PricedLine struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity"`
	UnitPrice  int64              `json:"unitPrice"`
	LineTotal  int64              `json:"lineTotal"`
}

type Quote struct {
	Lines              []PricedLine         `json:"lines"`
	Subtotal           int64                `json:"subtotal"`
	DeliveryFee        int64                `json:"deliveryFee"`
	PlatformFee        int64                `json:"platformFee"`
	Total              int64                `json:"total"`
	DistanceKm         *float64             `json:"distanceKm,omitempty"`
	IsOutOfRange       bool                 `json:"isOutOfRange"`
	UnresolvedItemIDs  []openapi_types.UUID `json:"unresolvedItemIds"`
	UnavailableItemIDs []openapi_types.UUID `json:"unavailableItemIds"`
}

type EligibilityRequest struct {
	Phone  string              `json:"phone"`
	Action string              `json:"action"`
	ItemID *openapi_types.UUID `json:"itemId,omitempty"`
	Items  []CartLine          `json:"items,omitempty"`
}

type EligibilityResult struct {
	Allow      bool   `json:"allow"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
	IsPreOrder bool   `json:"isPreOrder"`
	Notice     string `json:"notice,omitempty"`
}

type PlaceOrderRequest struct {
	Phone          string     `json:"phone"`
	Items          []CartLine `json:"items"`
	Address        string     `json:"address"`
	TransactionRef string     `json:"transactionRef"`
}

type OrderItem struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity"`
	Price      int64              `json:"price"`
}

type Order struct {
	ID             openapi_types.UUID `json:"id"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerName   string             `json:"customerName"`
	Address        string             `json:"address"`
	Items          []OrderItem        `json:"items"`
	Subtotal       int64              `json:"subtotal"`
	DeliveryFee    int64              `json:"deliveryFee"`
	PlatformFee    int64              `json:"platformFee"`
	Total          int64              `json:"total"`
	Status         string             `json:"status"`
	IsPreOrder     bool               `json:"isPreOrder"`
	TransactionRef string             `json:"transactionRef"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type PlacedOrder struct {
	Order  Order  `json:"order"`
	Notice string `json:"notice,omitempty"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Customer struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Location  *GeoPoint `json:"location,omitempty"`
	IsBlocked bool      `json:"isBlocked"`
	JoinedAt  time.Time `json:"joinedAt"`
}

type CustomerProfile struct {
	Name     *string   `json:"name,omitempty"`
	Address  *string   `json:"address,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
}

type BlockState struct {
	IsBlocked bool `json:"isBlocked"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type GetMenuParams struct {
	AvailableOnly *bool   `form:"availableOnly,omitempty" json:"availableOnly,omitempty"`
	Category      *string `form:"category,omitempty" json:"category,omitempty"`
}

type GetCategoriesParams struct {
	VisibleOnly *bool `form:"visibleOnly,omitempty" json:"visibleOnly,omitempty"`
}

type GetReviewsParams struct {
	MenuItemID *openapi_types.UUID `form:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	OrderID    *openapi_types.UUID `form:"orderId,omitempty" json:"orderId,omitempty"`
}
