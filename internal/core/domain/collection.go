package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionStatus is a lifecycle tag on a collection record. Records are
// immutable once written, so today everything is RECORDED; the field is kept
// for forward compatibility with reconciliation flows.
type CollectionStatus string

const (
	CollectionRecorded CollectionStatus = "RECORDED"
)

// CollectionRecord is one cash-pickup event at a machine. The 40/60 split and
// any extra payment are folded into BarAmount/BusinessAmount exactly once at
// creation time; ExtraAmount is retained purely as an audit field and must
// never be re-applied by readers. Records are never updated or deleted.
type CollectionRecord struct {
	CollectionID    string           `json:"collectionID"` // Primary Key (UUID), assigned at creation
	OperatorID      string           `json:"operatorID"`
	MachineID       int64            `json:"machineID"`
	BarID           int64            `json:"barID"`
	BarName         string           `json:"barName"` // Denormalized display copy at collection time
	TotalCollection decimal.Decimal  `json:"totalCollection"`
	BarAmount       decimal.Decimal  `json:"barAmount"`
	BusinessAmount  decimal.Decimal  `json:"businessAmount"`
	ExtraAmount     decimal.Decimal  `json:"extraAmount"`
	Comments        string           `json:"comments"`
	Status          CollectionStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"` // Sole ordering/pagination key
	CreatedBy       string           `json:"createdBy"`
}

// CollectionCursor identifies the last-seen record of a history page.
// CreatedAt alone is not unique, so CollectionID breaks ties to guarantee no
// record is skipped or duplicated across pages.
type CollectionCursor struct {
	CreatedAt    time.Time
	CollectionID string
}
