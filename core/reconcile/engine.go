package reconcile

import "context"

// Reconcile compares the expected and received line items of an order and
// classifies every item code as MATCH, MISSING, or EXCESS.
//
// A nil report (with nil error) means the order has no expected line items,
// which is how the store signals an unknown order. An order with zero expected
// and zero received lines is indistinguishable from a non-existent order; the
// engine deliberately does not disambiguate the two.
//
// The function is a pure projection: it has no side effects and returns either
// a complete report or an error, never a partial result. Store failures
// propagate unmodified; retrying is the caller's concern.
func Reconcile(ctx context.Context, store LineItemStore, orderID string) (*Report, error) {
	expected, err := store.GetExpected(ctx, orderID)
	if err != nil {
		return nil, err
	}

	received, err := store.GetInbound(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if len(expected) == 0 {
		return nil, nil
	}

	// Sum received quantities per item code. Codes may repeat across raw
	// receipt lines, so fold rather than overwrite.
	receivedTotals := make(map[string]int, len(received))
	for _, item := range received {
		receivedTotals[item.ItemCode] += item.ReceivedQuantity
	}

	// Ordered union of item codes: expected lines first in their original
	// order, then received-only codes in first-seen order. Maps alone would
	// not give a stable iteration order.
	seen := make(map[string]struct{}, len(expected)+len(received))
	codes := make([]string, 0, len(expected)+len(received))
	expectedByCode := make(map[string]LineItem, len(expected))

	for _, item := range expected {
		if _, ok := seen[item.ItemCode]; ok {
			continue
		}
		seen[item.ItemCode] = struct{}{}
		codes = append(codes, item.ItemCode)
		expectedByCode[item.ItemCode] = item
	}
	for _, item := range received {
		if _, ok := seen[item.ItemCode]; ok {
			continue
		}
		seen[item.ItemCode] = struct{}{}
		codes = append(codes, item.ItemCode)
	}

	lines := make([]Line, 0, len(codes))
	for _, code := range codes {
		lines = append(lines, buildLine(code, expectedByCode, receivedTotals))
	}

	return &Report{OrderID: orderID, Lines: lines}, nil
}

// buildLine derives the reconciled line for a single item code.
func buildLine(code string, expected map[string]LineItem, receivedTotals map[string]int) Line {
	name := UnknownItemName
	ordered := 0
	if item, ok := expected[code]; ok {
		name = item.ItemName
		ordered = item.OrderedQuantity
	}

	receivedQty := receivedTotals[code]
	diff := receivedQty - ordered

	var status Status
	switch {
	case diff == 0:
		status = StatusMatch
	case diff < 0:
		status = StatusMissing
	default:
		status = StatusExcess
	}

	return Line{
		ItemCode:         code,
		ItemName:         name,
		OrderedQuantity:  ordered,
		ReceivedQuantity: receivedQty,
		Difference:       diff,
		Status:           status,
	}
}
