package catalog

import (
	"strings"

	"kitchen/internal/pkg/errs"
)

// Category is a menu category's image and its carousel visibility.
// The name is the key and matches MenuItem category strings exactly.
type Category struct {
	name    string
	image   string
	visible bool
}

// NewCategory creates a category row. Rows created by a toggle start visible;
// rows created by an image upload start hidden unless told otherwise.
func NewCategory(name, image string, visible bool) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	return &Category{name: name, image: strings.TrimSpace(image), visible: visible}, nil
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Image() string {
	return c.image
}

func (c *Category) IsVisible() bool {
	return c.visible
}

// SetImage replaces the image reference.
func (c *Category) SetImage(image string) {
	c.image = strings.TrimSpace(image)
}

// SetVisible sets the carousel flag.
func (c *Category) SetVisible(visible bool) {
	c.visible = visible
}

// ToggleVisibility flips the carousel flag and returns the new value.
func (c *Category) ToggleVisibility() bool {
	c.visible = !c.visible
	return c.visible
}
