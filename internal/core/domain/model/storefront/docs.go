// Package storefront holds the merchant's singleton StoreSettings and the
// wall-clock time-of-day value used for opening hours.
//
// There is exactly one settings record. It is created with DefaultSettings on
// first access and only patched afterwards. Opening hours are interpreted in
// the settings' IANA timezone, never in the server's local zone.
package storefront
