package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

const selectCustomers = `
	SELECT
		phone,
		name,
		address,
		location_lat,
		location_lng,
		is_blocked,
		joined_at
	FROM customers`

// GetCustomersQueryHandler backs the merchant's customer list.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectCustomers + " ORDER BY joined_at DESC, phone").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerView, 0)
	for rows.Next() {
		view, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerQueryHandler reads one profile.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns the profile or an *errs.ObjectNotFoundError.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	phone := query.Phone().String()
	view, err := scanCustomer(h.db.WithContext(ctx).Raw(selectCustomers+" WHERE phone = ?", phone).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerView{}, errs.NewObjectNotFoundError("customer", phone)
	}
	return view, err
}

func scanCustomer(s scanner) (CustomerView, error) {
	var view CustomerView
	err := s.Scan(
		&view.Phone,
		&view.Name,
		&view.Address,
		&view.LocationLat,
		&view.LocationLng,
		&view.IsBlocked,
		&view.JoinedAt,
	)
	if err != nil {
		return CustomerView{}, err
	}
	if view.LocationLat == nil || view.LocationLng == nil {
		view.LocationLat, view.LocationLng = nil, nil
	}
	return view, nil
}
