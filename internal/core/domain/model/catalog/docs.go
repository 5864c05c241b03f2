// Package catalog holds the home-screen merchandising records: promotional
// banners that point at menu items, and category images whose visible flag
// decides carousel membership.
package catalog
