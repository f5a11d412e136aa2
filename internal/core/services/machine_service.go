package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
)

type machineService struct {
	machineRepo portsrepo.MachineRepositoryFacade
	barRepo     portsrepo.BarRepositoryFacade
}

// NewMachineService creates the machine management service.
func NewMachineService(machineRepo portsrepo.MachineRepositoryFacade, barRepo portsrepo.BarRepositoryFacade) portssvc.MachineSvcFacade {
	return &machineService{machineRepo: machineRepo, barRepo: barRepo}
}

var _ portssvc.MachineSvcFacade = (*machineService)(nil)

// ownedBar checks that barID exists and belongs to operatorID.
func (s *machineService) ownedBar(ctx context.Context, barID int64, operatorID string) error {
	bar, err := s.barRepo.FindBarByID(ctx, barID)
	if err != nil {
		return err
	}
	if bar.OperatorID != operatorID {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *machineService) CreateMachine(ctx context.Context, req dto.CreateMachineRequest, operatorID string) (*domain.Machine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ownedBar(ctx, req.BarID, operatorID); err != nil {
		return nil, err
	}
	if req.Counter.IsNegative() {
		return nil, apperrors.ErrValidation
	}

	now := time.Now()
	machine := domain.Machine{
		OperatorID:   operatorID,
		BarID:        req.BarID,
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Counter:      req.Counter,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	machineID, err := s.machineRepo.SaveMachine(ctx, machine)
	if err != nil {
		logger.Error("Failed to save machine", slog.String("error", err.Error()))
		return nil, err
	}
	machine.MachineID = machineID

	logger.Info("Machine created", slog.Int64("machine_id", machineID), slog.Int64("bar_id", req.BarID))
	return &machine, nil
}

func (s *machineService) GetMachineByID(ctx context.Context, machineID int64, operatorID string) (*domain.Machine, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if machine.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return machine, nil
}

func (s *machineService) ListMachines(ctx context.Context, operatorID string, params dto.ListMachinesParams) ([]domain.Machine, error) {
	if params.BarID != nil {
		if err := s.ownedBar(ctx, *params.BarID, operatorID); err != nil {
			return nil, err
		}
		return s.machineRepo.FindMachinesByBar(ctx, *params.BarID)
	}
	return s.machineRepo.FindMachinesByOperator(ctx, operatorID, params.Limit, params.Offset)
}

func (s *machineService) UpdateMachine(ctx context.Context, machineID int64, req dto.UpdateMachineRequest, operatorID string) (*domain.Machine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	machine, err := s.GetMachineByID(ctx, machineID, operatorID)
	if err != nil {
		return nil, err
	}

	if req.BarID != nil {
		if err := s.ownedBar(ctx, *req.BarID, operatorID); err != nil {
			return nil, err
		}
		machine.BarID = *req.BarID
	}
	if req.Name != nil {
		machine.Name = *req.Name
	}
	if req.SerialNumber != nil {
		machine.SerialNumber = *req.SerialNumber
	}
	if req.IsActive != nil {
		machine.IsActive = *req.IsActive
	}
	machine.LastUpdatedAt = time.Now()
	machine.LastUpdatedBy = operatorID

	if err := s.machineRepo.UpdateMachine(ctx, *machine); err != nil {
		logger.Error("Failed to update machine", slog.String("error", err.Error()), slog.Int64("machine_id", machineID))
		return nil, err
	}

	return machine, nil
}
