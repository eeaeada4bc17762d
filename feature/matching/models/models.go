// Package models contains the database models for LPO matching.
package models

import "time"

// LpoItem is one expected line item on a Local Purchase Order, as synced
// from the procurement system.
type LpoItem struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement"`
	LpoNumber       string    `gorm:"column:lpo_number;size:32;index"`
	ItemCode        string    `gorm:"column:item_code;size:64"`
	ItemName        string    `gorm:"column:item_name;size:255"`
	OrderedQuantity int       `gorm:"column:ordered_quantity"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (LpoItem) TableName() string {
	return "lpo_items"
}

// InboundItem is one received quantity recorded at the gate for an LPO.
// Multiple rows may share an item code; the engine sums them.
type InboundItem struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	LpoNumber  string    `gorm:"column:lpo_number;size:32;index"`
	ItemCode   string    `gorm:"column:item_code;size:64"`
	Quantity   int       `gorm:"column:quantity"`
	ReceivedAt time.Time `gorm:"column:received_at"`
}

// TableName overrides the table name.
func (InboundItem) TableName() string {
	return "inbound_items"
}
