// Package kernel provides the primitives shared by every aggregate of the storefront:
//   - UUID: identifier value object for orders, banners, reviews and menu items
//   - GeoPoint: a latitude/longitude pair with great-circle distance
//   - Phone: the customer key, normalized from user input
//
// Values are immutable and must be created through their constructors; the zero
// value of each type fails Validate.
package kernel
