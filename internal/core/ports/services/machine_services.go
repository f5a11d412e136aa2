package services

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/dto"
)

// MachineSvcFacade defines operations for managing machines.
type MachineSvcFacade interface {
	// CreateMachine registers a new machine at one of the operator's bars.
	CreateMachine(ctx context.Context, req dto.CreateMachineRequest, operatorID string) (*domain.Machine, error)

	// GetMachineByID retrieves a machine owned by the operator.
	GetMachineByID(ctx context.Context, machineID int64, operatorID string) (*domain.Machine, error)

	// ListMachines retrieves a page of the operator's machines, optionally
	// filtered to a single bar.
	ListMachines(ctx context.Context, operatorID string, params dto.ListMachinesParams) ([]domain.Machine, error)

	// UpdateMachine updates a machine owned by the operator (placement, name,
	// serial number, active flag; never the running counter).
	UpdateMachine(ctx context.Context, machineID int64, req dto.UpdateMachineRequest, operatorID string) (*domain.Machine, error)
}
