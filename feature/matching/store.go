package matching

import (
	"context"
	"fmt"

	"mosb-portal/core/reconcile"
	"mosb-portal/feature/matching/models"

	"gorm.io/gorm"
)

// Store reads LPO and inbound lines from the database. It implements
// reconcile.LineItemStore: unknown LPO numbers yield empty slices, never an
// error.
type Store struct {
	db *gorm.DB
}

// NewStore creates a database-backed line item store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetExpected returns the purchase order lines for the given LPO number, in
// insertion order.
func (s *Store) GetExpected(ctx context.Context, lpoNumber string) ([]reconcile.LineItem, error) {
	var rows []models.LpoItem
	err := s.db.WithContext(ctx).
		Where("lpo_number = ?", lpoNumber).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load lpo items: %w", err)
	}

	items := make([]reconcile.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, reconcile.LineItem{
			ItemCode:        row.ItemCode,
			ItemName:        row.ItemName,
			OrderedQuantity: row.OrderedQuantity,
		})
	}
	return items, nil
}

// GetInbound returns the raw inbound receipt lines for the given LPO number,
// in insertion order. Item codes may repeat; the engine sums them.
func (s *Store) GetInbound(ctx context.Context, lpoNumber string) ([]reconcile.ReceivedItem, error) {
	var rows []models.InboundItem
	err := s.db.WithContext(ctx).
		Where("lpo_number = ?", lpoNumber).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inbound items: %w", err)
	}

	items := make([]reconcile.ReceivedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, reconcile.ReceivedItem{
			ItemCode:         row.ItemCode,
			ReceivedQuantity: row.Quantity,
		})
	}
	return items, nil
}
