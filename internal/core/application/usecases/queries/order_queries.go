// Package queries contains read operations for retrieving storefront state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Listing queries read the tables directly with SQL and return flat read models;
// queries that need business rules (quotes, eligibility, store hours) load
// domain objects through narrow reader interfaces instead.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via one of the NewGet...OrdersQuery constructors",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// OrderScope selects which orders a GetOrdersQuery returns.
type OrderScope int

const (
	// AllOrders is the merchant's full history.
	AllOrders OrderScope = iota
	// ActiveOrders is the merchant board: every order not yet in a terminal status.
	ActiveOrders
	// CustomerOrders is one customer's history.
	CustomerOrders
)

// GetOrdersQuery lists orders newest first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(phone)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	scope OrderScope
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery lists every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{scope: AllOrders, guard: guard.NewConstructorGuard()}
}

// NewGetActiveOrdersQuery lists orders that still need merchant action.
func NewGetActiveOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{scope: ActiveOrders, guard: guard.NewConstructorGuard()}
}

// NewGetCustomerOrdersQuery lists the orders placed from phone.
func NewGetCustomerOrdersQuery(phone kernel.Phone) (GetOrdersQuery, error) {
	if err := phone.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{scope: CustomerOrders, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q GetOrdersQuery) Phone() kernel.Phone {
	return q.phone
}

// GetOrderQuery fetches one order, which is how customers poll for status changes.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates the query for orderID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one frozen line of an order.
type OrderItemView struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	Price      int64
}

// OrderView is the read model shared by every order query.
type OrderView struct {
	ID             kernel.UUID
	CustomerPhone  string
	CustomerName   string
	Address        string
	Items          []OrderItemView
	Subtotal       int64
	DeliveryFee    int64
	PlatformFee    int64
	Total          int64
	Status         order.Status
	IsPreOrder     bool
	TransactionRef string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
