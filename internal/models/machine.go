package models

import "github.com/shopspring/decimal"

// Machine represents a row in the machines table.
type Machine struct {
	MachineID    int64           `db:"machine_id"`
	OperatorID   string          `db:"operator_id"`
	BarID        int64           `db:"bar_id"`
	Name         string          `db:"name"`
	SerialNumber string          `db:"serial_number"`
	Counter      decimal.Decimal `db:"counter"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
