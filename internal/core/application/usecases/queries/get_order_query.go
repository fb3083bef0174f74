// Package queries contains read operations of the CQRS architecture. Queries
// never change state and return flat response structs ready for adapters.
package queries

import (
	"errors"

	"ordering/internal/core/application/ordercontext"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the lines and totals of a session's order.
//
// Example:
//
//	query, _ := NewGetOrderQuery(sessionID)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d items, %s\n", resp.TotalQuantity, resp.TotalPrice)
type GetOrderQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(sessionID string) (GetOrderQuery, error) {
	if err := ordercontext.ValidateSessionID(sessionID); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) SessionID() string {
	return q.sessionID
}

// GetOrderQueryResponse is the order of one session.
type GetOrderQueryResponse struct {
	Lines         []OrderLineResponse
	TotalPrice    kernel.Price
	TotalQuantity int
}

// OrderLineResponse is a line together with everything a line view renders.
type OrderLineResponse struct {
	ID        kernel.UUID
	MenuID    kernel.UUID
	Name      string
	NameEn    string
	Type      string
	AssetPath string
	Quantity  int
	Combo     bool
	UnitPrice kernel.Price
	Total     kernel.Price

	// ComboAvailable tells whether the single/combo switch is shown.
	ComboAvailable bool
	CanIncrement   bool
	CanDecrement   bool
}
