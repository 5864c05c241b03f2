package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetBannersQueryHandler reads the banners table.
type GetBannersQueryHandler struct {
	db *gorm.DB
}

func NewGetBannersQueryHandler(db *gorm.DB) GetBannersQueryHandler {
	return GetBannersQueryHandler{db: db}
}

func (h GetBannersQueryHandler) Handle(ctx context.Context, query GetBannersQuery) ([]BannerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			subtitle,
			cta,
			image,
			gradient,
			linked_item_ids
		FROM banners
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := make([]BannerView, 0)
	for rows.Next() {
		var (
			view   BannerView
			id     uuid.UUID
			linked datatypes.JSONSlice[uuid.UUID]
		)

		err = rows.Scan(&id, &view.Title, &view.Subtitle, &view.CTA, &view.Image, &view.Gradient, &linked)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.LinkedItemIDs = make([]kernel.UUID, 0, len(linked))
		for _, raw := range linked {
			itemID, idErr := kernel.UUIDFromBytes(raw[:])
			if idErr != nil {
				return nil, idErr
			}
			view.LinkedItemIDs = append(view.LinkedItemIDs, itemID)
		}
		banners = append(banners, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return banners, nil
}

// GetCategoriesQueryHandler merges menu categories with their stored images.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle returns categories ordered by name. Names come from both the menu and
// the category_images table, so an image can be prepared before the first item exists.
func (h GetCategoriesQueryHandler) Handle(ctx context.Context, query GetCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statement := `
		SELECT
			n.category,
			COALESCE(ci.image, ''),
			COALESCE(ci.visible, FALSE),
			(SELECT COUNT(*) FROM menu_items m WHERE m.category = n.category)
		FROM (
			SELECT category FROM menu_items
			UNION
			SELECT category FROM category_images
		) n
		LEFT JOIN category_images ci ON ci.category = n.category`
	if query.VisibleOnly() {
		statement += " WHERE ci.visible = TRUE"
	}
	statement += " ORDER BY n.category"

	rows, err := h.db.WithContext(ctx).Raw(statement).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var view CategoryView
		if err = rows.Scan(&view.Name, &view.Image, &view.Visible, &view.ItemCount); err != nil {
			return nil, err
		}
		categories = append(categories, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
