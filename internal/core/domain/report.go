package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExportRow is one line of the date-range collection report, a collection
// joined with its machine and the machine's current bar.
type ExportRow struct {
	BarName         string
	MachineID       int64
	MachineName     string
	BusinessAmount  decimal.Decimal
	BarAmount       decimal.Decimal
	TotalCollection decimal.Decimal
	Date            time.Time
	Comments        string
}

// ExportFile is a rendered report ready to be sent to the caller.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
