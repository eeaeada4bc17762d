package reconcile

// Status classifies a reconciled line by the sign of its quantity difference.
type Status string

const (
	// StatusMatch means the received quantity equals the ordered quantity.
	StatusMatch Status = "MATCH"
	// StatusMissing means less was received than ordered.
	StatusMissing Status = "MISSING"
	// StatusExcess means more was received than ordered.
	StatusExcess Status = "EXCESS"
)

// UnknownItemName is the display name for items that were received but do not
// appear on the purchase order.
const UnknownItemName = "(unknown)"

// LineItem is an expected line on a purchase order.
type LineItem struct {
	// ItemCode uniquely identifies the item within an order.
	ItemCode string `json:"itemCode"`

	// ItemName is the display name of the item.
	ItemName string `json:"itemName"`

	// OrderedQuantity is the quantity on the purchase order.
	OrderedQuantity int `json:"orderedQuantity"`
}

// ReceivedItem is a single inbound receipt line. Multiple receipts may exist
// for the same item code within one order; the engine sums them.
type ReceivedItem struct {
	// ItemCode identifies the received item.
	ItemCode string `json:"itemCode"`

	// ReceivedQuantity is the quantity physically received.
	ReceivedQuantity int `json:"receivedQuantity"`
}

// Line is the reconciliation output for a single item code.
type Line struct {
	// ItemCode uniquely identifies the item within the order.
	ItemCode string `json:"itemCode"`

	// ItemName is the display name, or "(unknown)" for received-only items.
	ItemName string `json:"itemName"`

	// OrderedQuantity is the expected quantity (0 for received-only items).
	OrderedQuantity int `json:"orderedQuantity"`

	// ReceivedQuantity is the summed received quantity.
	ReceivedQuantity int `json:"receivedQuantity"`

	// Difference is ReceivedQuantity - OrderedQuantity.
	Difference int `json:"difference"`

	// Status is MATCH, MISSING, or EXCESS, determined by the sign of Difference.
	Status Status `json:"status"`
}

// Report is the result of reconciling one order. It is derived on demand and
// never persisted.
type Report struct {
	// OrderID is the purchase order (LPO) number the report was built for.
	OrderID string `json:"orderId"`

	// Lines holds one entry per item code, expected items first in order
	// of appearance, then received-only items in first-seen order.
	Lines []Line `json:"lines"`
}
