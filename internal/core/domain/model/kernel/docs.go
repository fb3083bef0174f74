// Package kernel provides core domain primitives shared by the menu and order models.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: An integral currency amount (won) that can never be negative
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe for
// concurrent use.
package kernel
