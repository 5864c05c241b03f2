package http

import (
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toWireIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		out[i] = id.Bytes()
	}
	return out
}

func toCartLines(lines []CartLine) ([]services.CartLine, error) {
	out := make([]services.CartLine, len(lines))
	for i, line := range lines {
		id, err := toKernelID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		out[i] = services.CartLine{MenuItemID: id, Quantity: line.Quantity}
	}
	return out, nil
}

// details defaults Available to true when the field is omitted.
func (m NewMenuItem) details() menu.Details {
	available := true
	if m.Available != nil {
		available = *m.Available
	}
	return menu.Details{
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		Image:         m.Image,
		Category:      m.Category,
		IsVeg:         m.IsVeg,
		Available:     available,
	}
}

func settingsFromView(v queries.SettingsView) Settings {
	return Settings{
		StoreName:              v.StoreName,
		UpiID:                  v.UpiID,
		DeliveryRadiusKm:       v.DeliveryRadiusKm,
		Location:               GeoPoint{Lat: v.LocationLat, Lng: v.LocationLng},
		IsOpen:                 v.IsOpen,
		OpenTime:               v.OpenTime,
		CloseTime:              v.CloseTime,
		NextOpenMessage:        v.NextOpenMessage,
		Timezone:               v.Timezone,
		HasMerchantCredentials: v.HasMerchantCredentials,
	}
}

func settingsFromAggregate(s *storefront.Settings) Settings {
	return Settings{
		StoreName:              s.StoreName(),
		UpiID:                  s.UpiID(),
		DeliveryRadiusKm:       s.DeliveryRadiusKm(),
		Location:               GeoPoint{Lat: s.Location().Lat(), Lng: s.Location().Lng()},
		IsOpen:                 s.IsOpen(),
		OpenTime:               s.OpenTime().String(),
		CloseTime:              s.CloseTime().String(),
		NextOpenMessage:        s.NextOpenMessage(),
		Timezone:               s.TimezoneName(),
		HasMerchantCredentials: s.HasMerchantCredentials(),
	}
}

func availabilityFrom(a services.Availability) Availability {
	return Availability{
		State:            string(a.State),
		AcceptsOrders:    a.AcceptsOrders(),
		NextOpenAt:       a.NextOpenAt,
		MinutesUntilOpen: a.MinutesUntilOpen,
		Message:          a.Message,
	}
}

func menuItemFromView(v queries.MenuItemView) MenuItem {
	return MenuItem{
		ID:            v.ID.Bytes(),
		Name:          v.Name,
		Description:   v.Description,
		Price:         v.Price,
		OriginalPrice: v.OriginalPrice,
		Image:         v.Image,
		Category:      v.Category,
		IsVeg:         v.IsVeg,
		Available:     v.Available,
		Rating:        v.Rating,
		ReviewCount:   v.ReviewCount,
	}
}

func categoryFromView(v queries.CategoryView) Category {
	return Category{Name: v.Name, Image: v.Image, Visible: v.Visible, ItemCount: v.ItemCount}
}

func bannerFromAggregate(b *catalog.Banner) Banner {
	content := b.Content()
	return Banner{
		ID:            b.ID().Bytes(),
		Title:         content.Title,
		Subtitle:      content.Subtitle,
		CTA:           content.CTA,
		Image:         content.Image,
		Gradient:      content.Gradient,
		LinkedItemIDs: toWireIDs(b.LinkedItemIDs()),
	}
}

func quoteFrom(q services.Quote) Quote {
	lines := make([]PricedLine, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = PricedLine{
			MenuItemID: l.MenuItemID.Bytes(),
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			LineTotal:  l.LineTotal,
		}
	}
	return Quote{
		Lines:              lines,
		Subtotal:           q.Subtotal,
		DeliveryFee:        q.DeliveryFee,
		PlatformFee:        q.PlatformFee,
		Total:              q.Total,
		DistanceKm:         q.DistanceKm,
		IsOutOfRange:       q.IsOutOfRange,
		UnresolvedItemIDs:  toWireIDs(q.UnresolvedItemIDs),
		UnavailableItemIDs: toWireIDs(q.UnavailableItemIDs),
	}
}

func orderFromView(v queries.OrderView) Order {
	items := make([]OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID.Bytes(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
	}
	return Order{
		ID:             v.ID.Bytes(),
		CustomerPhone:  v.CustomerPhone,
		CustomerName:   v.CustomerName,
		Address:        v.Address,
		Items:          items,
		Subtotal:       v.Subtotal,
		DeliveryFee:    v.DeliveryFee,
		PlatformFee:    v.PlatformFee,
		Total:          v.Total,
		Status:         string(v.Status),
		IsPreOrder:     v.IsPreOrder,
		TransactionRef: v.TransactionRef,
		CreatedAt:      v.CreatedAt.UTC(),
		UpdatedAt:      v.UpdatedAt.UTC(),
	}
}

func orderFromAggregate(o *order.Order) Order {
	items := make([]OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		}
	}
	recipient := o.Recipient()
	charges := o.Charges()
	return Order{
		ID:             o.ID().Bytes(),
		CustomerPhone:  recipient.Phone.String(),
		CustomerName:   recipient.Name,
		Address:        recipient.Address,
		Items:          items,
		Subtotal:       charges.Subtotal,
		DeliveryFee:    charges.DeliveryFee,
		PlatformFee:    charges.PlatformFee,
		Total:          charges.Total,
		Status:         string(o.Status()),
		IsPreOrder:     o.IsPreOrder(),
		TransactionRef: o.TransactionRef(),
		CreatedAt:      o.CreatedAt().UTC(),
		UpdatedAt:      o.UpdatedAt().UTC(),
	}
}

func customerFromView(v queries.CustomerView) Customer {
	c := Customer{
		Phone:     v.Phone,
		Name:      v.Name,
		Address:   v.Address,
		IsBlocked: v.IsBlocked,
		JoinedAt:  v.JoinedAt.UTC(),
	}
	if v.LocationLat != nil && v.LocationLng != nil {
		c.Location = &GeoPoint{Lat: *v.LocationLat, Lng: *v.LocationLng}
	}
	return c
}

func customerFromAggregate(c *customer.Customer) Customer {
	out := Customer{
		Phone:     c.Phone().String(),
		Name:      c.Name(),
		Address:   c.Address(),
		IsBlocked: c.IsBlocked(),
		JoinedAt:  c.JoinedAt().UTC(),
	}
	if loc := c.Location(); loc != nil {
		out.Location = &GeoPoint{Lat: loc.Lat(), Lng: loc.Lng()}
	}
	return out
}
