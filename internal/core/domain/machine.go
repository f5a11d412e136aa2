package domain

import "github.com/shopspring/decimal"

// Machine is a coin-operated dart machine placed at a bar.
// Counter is a running odometer of everything ever collected from the machine;
// it advances by the total of each collection and is display-only (never
// validated against the hardware meter).
type Machine struct {
	MachineID    int64           `json:"machineID"` // Primary Key (sequence)
	OperatorID   string          `json:"operatorID"`
	BarID        int64           `json:"barID"` // Current placement
	Name         string          `json:"name"`
	SerialNumber string          `json:"serialNumber"`
	Counter      decimal.Decimal `json:"counter"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// MachineCounter is the before/after odometer pair produced when a collection
// is recorded. It is ephemeral: returned for display, never persisted on its own.
type MachineCounter struct {
	OldCounter decimal.Decimal `json:"oldCounter"`
	NewCounter decimal.Decimal `json:"newCounter"`
}
