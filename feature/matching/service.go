package matching

import (
	"context"
	"strings"

	"mosb-portal/core/reconcile"

	"go.uber.org/zap"
)

// Service reconciles LPOs against inbound receipts.
type Service struct {
	store  reconcile.LineItemStore
	cache  *reconcile.Cache
	logger *zap.Logger
}

// NewService creates a new matching service. cache may be nil to disable
// report caching.
func NewService(store reconcile.LineItemStore, cache *reconcile.Cache, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// NormalizeLpoNumber trims and upper-cases an LPO number. Gate operators key
// numbers by hand; lookups are case-insensitive.
func NormalizeLpoNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Reconcile builds the reconciliation report for the given LPO number. A nil
// report (no error) means the LPO has no expected lines, i.e. it is unknown.
func (s *Service) Reconcile(ctx context.Context, lpoNumber string) (*reconcile.Report, error) {
	lpoNumber = NormalizeLpoNumber(lpoNumber)
	return s.cache.Reconcile(ctx, s.store, lpoNumber)
}
