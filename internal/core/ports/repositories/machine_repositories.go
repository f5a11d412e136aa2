package repositories

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// MachineReader defines read operations for machine data
type MachineReader interface {
	// FindMachineByID retrieves a specific machine.
	FindMachineByID(ctx context.Context, machineID int64) (*domain.Machine, error)

	// FindMachinesByOperator retrieves a paginated list of an operator's machines.
	FindMachinesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Machine, error)

	// FindMachinesByBar retrieves the machines currently placed at a bar.
	FindMachinesByBar(ctx context.Context, barID int64) ([]domain.Machine, error)

	// FindAllMachinesByOperator retrieves the operator's whole machine directory.
	FindAllMachinesByOperator(ctx context.Context, operatorID string) ([]domain.Machine, error)
}

// MachineWriter defines write operations for machine data
type MachineWriter interface {
	// SaveMachine persists a new machine and returns its assigned ID.
	SaveMachine(ctx context.Context, machine domain.Machine) (int64, error)

	// UpdateMachine updates an existing machine's details (name, serial, placement, active flag).
	// The running counter is only ever advanced through SaveCollection.
	UpdateMachine(ctx context.Context, machine domain.Machine) error
}

// MachineRepositoryFacade combines all machine-related repository interfaces
type MachineRepositoryFacade interface {
	MachineReader
	MachineWriter
}
