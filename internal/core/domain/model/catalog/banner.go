package catalog

import (
	"errors"
	"slices"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// DefaultGradient is the display theme used when none is given.
const DefaultGradient = "from-orange-500 to-red-500"

// ErrBannerIsNotConstructed is returned when a Banner bypassed its constructors.
var ErrBannerIsNotConstructed = errors.New("Banner must be created via NewBanner constructor")

// BannerContent is the free-form display text of a banner.
type BannerContent struct {
	Title    string
	Subtitle string
	CTA      string
	Image    string
	Gradient string
}

// BannerPatch updates individual fields; nil means unchanged.
type BannerPatch struct {
	Title    *string
	Subtitle *string
	CTA      *string
	Image    *string
	Gradient *string
}

// Banner promotes a set of menu items. The linked ids form a set: linking twice
// is a no-op and order of insertion is kept for display.
type Banner struct {
	id            kernel.UUID
	content       BannerContent
	linkedItemIDs []kernel.UUID

	isConstructed bool
}

// NewBanner creates a banner; only the title is required.
func NewBanner(id kernel.UUID, content BannerContent) (*Banner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	content, err := normalizeBanner(content)
	if err != nil {
		return nil, err
	}
	return &Banner{id: id, content: content, isConstructed: true}, nil
}

// RestoreBanner rebuilds a banner from storage.
func RestoreBanner(id kernel.UUID, content BannerContent, linked []kernel.UUID) (*Banner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	b := &Banner{id: id, content: content, isConstructed: true}
	for _, itemID := range linked {
		b.LinkItem(itemID)
	}
	return b, nil
}

// DefaultBanners is what an empty banner table is seeded with.
func DefaultBanners() []*Banner {
	seeds := []BannerContent{
		{Title: "50% OFF", Subtitle: "On your first order", CTA: "Order Now", Gradient: "from-orange-500 to-red-500"},
		{Title: "Fastest Delivery", Subtitle: "Within 5km radius", Gradient: "from-neutral-900 to-neutral-800"},
		{Title: "Veg Delight", Subtitle: "Try our new paneer specials", CTA: "View Menu", Gradient: "from-green-600 to-emerald-800"},
	}

	banners := make([]*Banner, 0, len(seeds))
	for _, c := range seeds {
		banners = append(banners, &Banner{id: kernel.NewUUID(), content: c, isConstructed: true})
	}
	return banners
}

// Validate ensures the banner was built by a constructor.
func (b *Banner) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBannerIsNotConstructed
	}
	return nil
}

func (b *Banner) ID() kernel.UUID {
	return b.id
}

func (b *Banner) Content() BannerContent {
	return b.content
}

// LinkedItemIDs returns a copy of the promoted menu item ids.
func (b *Banner) LinkedItemIDs() []kernel.UUID {
	return slices.Clone(b.linkedItemIDs)
}

// Apply merges a field patch; a failing patch changes nothing.
func (b *Banner) Apply(p BannerPatch) error {
	next := b.content
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Subtitle != nil {
		next.Subtitle = *p.Subtitle
	}
	if p.CTA != nil {
		next.CTA = *p.CTA
	}
	if p.Image != nil {
		next.Image = *p.Image
	}
	if p.Gradient != nil {
		next.Gradient = *p.Gradient
	}

	normalized, err := normalizeBanner(next)
	if err != nil {
		return err
	}
	b.content = normalized
	return nil
}

// LinkItem adds a menu item id. It reports whether the set changed.
func (b *Banner) LinkItem(itemID kernel.UUID) bool {
	if itemID.Validate() != nil || b.IsLinked(itemID) {
		return false
	}
	b.linkedItemIDs = append(b.linkedItemIDs, itemID)
	return true
}

// UnlinkItem removes a menu item id. It reports whether the set changed.
func (b *Banner) UnlinkItem(itemID kernel.UUID) bool {
	before := len(b.linkedItemIDs)
	b.linkedItemIDs = slices.DeleteFunc(b.linkedItemIDs, func(id kernel.UUID) bool {
		return id.IsEqual(itemID)
	})
	return len(b.linkedItemIDs) != before
}

// IsLinked reports whether itemID is promoted by the banner.
func (b *Banner) IsLinked(itemID kernel.UUID) bool {
	return slices.ContainsFunc(b.linkedItemIDs, func(id kernel.UUID) bool {
		return id.IsEqual(itemID)
	})
}

func normalizeBanner(c BannerContent) (BannerContent, error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Subtitle = strings.TrimSpace(c.Subtitle)
	c.CTA = strings.TrimSpace(c.CTA)
	c.Image = strings.TrimSpace(c.Image)
	c.Gradient = strings.TrimSpace(c.Gradient)

	if c.Title == "" {
		return BannerContent{}, errs.NewValueIsRequiredError("title")
	}
	if c.Gradient == "" {
		c.Gradient = DefaultGradient
	}
	return c, nil
}
