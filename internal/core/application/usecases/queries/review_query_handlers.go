package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReviewsQueryHandler reads the reviews table.
type GetReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

func (h GetReviewsQueryHandler) Handle(ctx context.Context, query GetReviewsQuery) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statement := `
		SELECT
			id,
			order_id,
			menu_item_id,
			customer_phone,
			customer_name,
			stars,
			comment,
			created_at
		FROM reviews`
	var args []any
	switch {
	case query.MenuItemID() != nil:
		statement += " WHERE menu_item_id = ?"
		args = append(args, query.MenuItemID().Bytes())
	case query.OrderID() != nil:
		statement += " WHERE order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	statement += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			view                    ReviewView
			id, orderID, menuItemID uuid.UUID
		)

		err = rows.Scan(
			&id,
			&orderID,
			&menuItemID,
			&view.CustomerPhone,
			&view.CustomerName,
			&view.Stars,
			&view.Comment,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		reviews = append(reviews, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
