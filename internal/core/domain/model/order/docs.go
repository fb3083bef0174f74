// Package order provides the order line model of the shop: pricing, quantity
// bounds and the single/combo choice.
//
// The package includes:
//   - Line: One menu in the order with its quantity and combo flag
//   - Quantity: A count bounded to [MinQuantity, MaxQuantity]
//   - ComboType: The single/combo choice for burgers
//   - Summary: Total price and quantity over the lines of one order
//   - Event: Change notifications published by the order context
//
// Key business rules:
//   - Line total is quantity times the effective unit price
//   - A combo without a combo price is charged the base price
//   - Quantity adjustments that would leave [1, 10] are rejected, never clamped
//   - Only burger lines can be switched to combo
//
// Lines are immutable values: every operation returns a new Line and leaves
// the receiver untouched.
package order
