package dto

import (
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMachineRequest defines the data needed to register a new machine.
type CreateMachineRequest struct {
	BarID        int64           `json:"barID" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	SerialNumber string          `json:"serialNumber"`
	Counter      decimal.Decimal `json:"counter"` // Initial odometer reading, defaults to zero
}

// UpdateMachineRequest defines the data allowed for updating a machine.
// The running counter is not updatable; it only advances with collections.
type UpdateMachineRequest struct {
	BarID        *int64  `json:"barID"` // Move the machine to another bar
	Name         *string `json:"name"`
	SerialNumber *string `json:"serialNumber"`
	IsActive     *bool   `json:"isActive"`
}

// MachineResponse defines the data returned for a machine.
type MachineResponse struct {
	MachineID     int64           `json:"machineID"`
	BarID         int64           `json:"barID"`
	Name          string          `json:"name"`
	SerialNumber  string          `json:"serialNumber"`
	Counter       decimal.Decimal `json:"counter"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListMachinesParams defines query parameters for listing machines.
type ListMachinesParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
	BarID  *int64 `form:"barID"` // Optional filter: machines at one bar
}

// ListMachinesResponse wraps the list of machines.
type ListMachinesResponse struct {
	Machines []MachineResponse `json:"machines"`
}

// ToMachineResponse converts a domain.Machine to MachineResponse DTO
func ToMachineResponse(m *domain.Machine) MachineResponse {
	return MachineResponse{
		MachineID:     m.MachineID,
		BarID:         m.BarID,
		Name:          m.Name,
		SerialNumber:  m.SerialNumber,
		Counter:       m.Counter,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToListMachinesResponse converts a slice of domain.Machine to the list DTO
func ToListMachinesResponse(machines []domain.Machine) ListMachinesResponse {
	res := make([]MachineResponse, len(machines))
	for i, m := range machines {
		res[i] = ToMachineResponse(&m)
	}
	return ListMachinesResponse{Machines: res}
}
