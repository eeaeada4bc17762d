package reconcile

import "context"

// LineItemStore supplies the expected and received line items for an order.
//
// Both methods must return an empty slice (never an error) for an unknown
// order; the engine relies on an empty expected set to signal absence.
type LineItemStore interface {
	// GetExpected returns the purchase order lines for the given order.
	GetExpected(ctx context.Context, orderID string) ([]LineItem, error)

	// GetInbound returns the raw inbound receipt lines for the given order.
	// Item codes are not guaranteed unique across the returned slice.
	GetInbound(ctx context.Context, orderID string) ([]ReceivedItem, error)
}
