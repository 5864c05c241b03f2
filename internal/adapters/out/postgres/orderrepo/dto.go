// Package orderrepo maps the order aggregate to the orders table.
// The item snapshot is stored as a JSON column so that it stays frozen
// whatever happens to the menu afterwards.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID             uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CustomerPhone  string                       `gorm:"size:16;index;not null"`
	CustomerName   string                       `gorm:"not null;default:''"`
	Address        string                       `gorm:"not null"`
	Items          datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	Subtotal       int64                        `gorm:"not null"`
	DeliveryFee    int64                        `gorm:"not null"`
	PlatformFee    int64                        `gorm:"not null"`
	Total          int64                        `gorm:"not null"`
	Status         string                       `gorm:"size:20;index;not null"`
	IsPreOrder     bool                         `gorm:"not null"`
	TransactionRef string                       `gorm:"not null;default:''"`
	CreatedAt      time.Time                    `gorm:"index;not null"`
	UpdatedAt      time.Time                    `gorm:"not null"`
}

// TableName overrides GORM's pluralisation.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one frozen cart line inside the items column.
type ItemDTO struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      int64     `json:"price"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make(datatypes.JSONSlice[ItemDTO], 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, ItemDTO{
			MenuItemID: it.MenuItemID().Bytes(),
			Name:       it.Name(),
			Quantity:   it.Quantity(),
			Price:      it.Price(),
		})
	}

	charges := o.Charges()
	recipient := o.Recipient()
	return OrderDTO{
		ID:             o.ID().Bytes(),
		CustomerPhone:  recipient.Phone.String(),
		CustomerName:   recipient.Name,
		Address:        recipient.Address,
		Items:          items,
		Subtotal:       charges.Subtotal,
		DeliveryFee:    charges.DeliveryFee,
		PlatformFee:    charges.PlatformFee,
		Total:          charges.Total,
		Status:         o.Status().String(),
		IsPreOrder:     o.IsPreOrder(),
		TransactionRef: o.TransactionRef(),
		CreatedAt:      o.CreatedAt().UTC(),
		UpdatedAt:      o.UpdatedAt().UTC(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(it.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(menuItemID, it.Name, it.Quantity, it.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Recipient{Phone: phone, Name: dto.CustomerName, Address: dto.Address},
		items,
		order.Charges{
			Subtotal:    dto.Subtotal,
			DeliveryFee: dto.DeliveryFee,
			PlatformFee: dto.PlatformFee,
			Total:       dto.Total,
		},
		status,
		dto.IsPreOrder,
		dto.TransactionRef,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
