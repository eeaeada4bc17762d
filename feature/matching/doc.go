// Package matching exposes LPO reconciliation over HTTP: expected purchase
// order lines are compared against summed inbound receipts, and each line is
// classified MATCH, MISSING, or EXCESS.
//
// The database supplies the lines (lpo_items, inbound_items); the engine in
// core/reconcile does the comparison. Reports are derived on demand and never
// persisted; an optional TTL cache collapses repeated lookups of the same
// order.
package matching
