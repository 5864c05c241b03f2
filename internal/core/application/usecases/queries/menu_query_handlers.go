package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectMenuItems = `
	SELECT
		m.id,
		m.name,
		m.description,
		m.price,
		m.original_price,
		m.image,
		m.category,
		m.is_veg,
		m.available,
		r.rating,
		COALESCE(r.review_count, 0)
	FROM menu_items m
	LEFT JOIN (
		SELECT menu_item_id, AVG(CAST(stars AS FLOAT)) AS rating, COUNT(*) AS review_count
		FROM reviews
		GROUP BY menu_item_id
	) r ON r.menu_item_id = m.id`

// GetMenuQueryHandler reads the menu together with per-item ratings.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns the menu ordered by category and then name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if query.AvailableOnly() {
		conditions = append(conditions, "m.available = ?")
		args = append(args, true)
	}
	if query.Category() != "" {
		conditions = append(conditions, "m.category = ?")
		args = append(args, query.Category())
	}

	statement := selectMenuItems
	if len(conditions) > 0 {
		statement += " WHERE " + strings.Join(conditions, " AND ")
	}
	statement += " ORDER BY m.category, m.name"

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		view, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetMenuItemQueryHandler reads one menu item.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns the item or an *errs.ObjectNotFoundError.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectMenuItems+" WHERE m.id = ?", query.ID().Bytes()).Row()
	view, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemView{}, errs.NewObjectNotFoundError("menu item", query.ID().String())
	}
	return view, err
}

func scanMenuItem(s scanner) (MenuItemView, error) {
	var (
		view MenuItemView
		id   uuid.UUID
	)
	err := s.Scan(
		&id,
		&view.Name,
		&view.Description,
		&view.Price,
		&view.OriginalPrice,
		&view.Image,
		&view.Category,
		&view.IsVeg,
		&view.Available,
		&view.Rating,
		&view.ReviewCount,
	)
	if err != nil {
		return MenuItemView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	return view, err
}
