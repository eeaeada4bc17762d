// Package reconcile implements the inbound reconciliation engine: it compares
// a purchase order's expected line items against what was physically received
// and classifies every item code as MATCH, MISSING, or EXCESS.
//
// # Algorithm
//
// The engine fetches both sides from a LineItemStore, sums received
// quantities per item code (receipts are not unique by code), builds the
// ordered union of all codes, and derives one Line per code. The status is
// fully determined by the sign of receivedQuantity - orderedQuantity. Item
// codes received but absent from the order appear as EXCESS with the name
// "(unknown)" and an ordered quantity of zero.
//
// An empty expected set yields a nil report: that is the "order not found"
// signal, not an error. Store failures propagate unmodified.
//
// # Ordering
//
// Report lines are emitted in a stable order (expected lines first, then
// received-only codes in first-seen order) so results are reproducible for a
// given input. Callers must not attach numeric meaning to the order.
//
// # Cache
//
// A TTL-based cache with singleflight stampede protection is available for
// read-heavy deployments where many gate clients poll the same order.
//
// # Usage
//
//	report, err := reconcile.Reconcile(ctx, store, "LPO-2024-001234")
//	if err != nil { ... }
//	if report == nil {
//	    // order has no expected line items
//	}
package reconcile
