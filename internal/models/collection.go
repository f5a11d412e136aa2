package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionStatus mirrors domain.CollectionStatus at the storage layer.
type CollectionStatus string

const (
	CollectionRecorded CollectionStatus = "RECORDED"
)

// Collection represents a row in the collections table. Rows are insert-only.
type Collection struct {
	CollectionID    string           `db:"collection_id"`
	OperatorID      string           `db:"operator_id"`
	MachineID       int64            `db:"machine_id"`
	BarID           int64            `db:"bar_id"`
	BarName         string           `db:"bar_name"`
	TotalCollection decimal.Decimal  `db:"total_collection"`
	BarAmount       decimal.Decimal  `db:"bar_amount"`
	BusinessAmount  decimal.Decimal  `db:"business_amount"`
	ExtraAmount     decimal.Decimal  `db:"extra_amount"`
	Comments        string           `db:"comments"`
	Status          CollectionStatus `db:"status"`
	CreatedAt       time.Time        `db:"created_at"`
	CreatedBy       string           `db:"created_by"`
}
