// Package services provides domain services that work across several lines of
// an order instead of inside a single one.
//
// The package includes:
//   - OrderComposer: decides how a menu picked from the catalog becomes part of an order
package services
