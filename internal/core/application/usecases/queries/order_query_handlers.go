package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		id,
		customer_phone,
		customer_name,
		address,
		items,
		subtotal,
		delivery_fee,
		platform_fee,
		total,
		status,
		is_pre_order,
		transaction_ref,
		created_at,
		updated_at
	FROM orders`

// orderItemRow mirrors the JSON stored in orders.items.
type orderItemRow struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      int64     `json:"price"`
}

// GetOrdersQueryHandler reads order lists straight from the orders table.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	board, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders need attention\n", len(board))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the orders in the query's scope, newest first. An empty
// result is an empty slice, never nil.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where string
		args  []any
	)
	switch query.Scope() {
	case ActiveOrders:
		active := order.ActiveStatuses()
		statuses := make([]string, 0, len(active))
		for _, s := range active {
			statuses = append(statuses, s.String())
		}
		where, args = " WHERE status IN ?", []any{statuses}
	case CustomerOrders:
		where, args = " WHERE customer_phone = ?", []any{query.Phone().String()}
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrders+where+" ORDER BY created_at DESC, id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or an *errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectOrders+" WHERE id = ?", query.OrderID().Bytes()).Row()
	view, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return view, err
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (OrderView, error) {
	var (
		view   OrderView
		id     uuid.UUID
		items  datatypes.JSONSlice[orderItemRow]
		status string
	)

	err := s.Scan(
		&id,
		&view.CustomerPhone,
		&view.CustomerName,
		&view.Address,
		&items,
		&view.Subtotal,
		&view.DeliveryFee,
		&view.PlatformFee,
		&view.Total,
		&status,
		&view.IsPreOrder,
		&view.TransactionRef,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}

	view.Items = make([]OrderItemView, 0, len(items))
	for _, item := range items {
		itemID, idErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.Items = append(view.Items, OrderItemView{
			MenuItemID: itemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	return view, nil
}
