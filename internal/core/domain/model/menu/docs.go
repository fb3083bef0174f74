// Package menu provides the catalog entity that order lines reference.
//
// The package includes:
//   - Menu: An immutable catalog entry with a base price and, for burgers, an optional combo price
//   - Type: The menu category (burger, side, drink)
//
// Key business rules:
//   - Menus must have a valid identifier, a name and a known type
//   - Prices are never negative
//   - Only burgers may define a combo price
package menu
