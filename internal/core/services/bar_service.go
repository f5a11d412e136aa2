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

type barService struct {
	barRepo      portsrepo.BarRepositoryFacade
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewBarService creates the bar management service.
func NewBarService(barRepo portsrepo.BarRepositoryFacade, locationRepo portsrepo.LocationRepositoryFacade) portssvc.BarSvcFacade {
	return &barService{barRepo: barRepo, locationRepo: locationRepo}
}

var _ portssvc.BarSvcFacade = (*barService)(nil)

func (s *barService) CreateBar(ctx context.Context, req dto.CreateBarRequest, operatorID string) (*domain.Bar, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The hosting location must exist and belong to the same operator.
	location, err := s.locationRepo.FindLocationByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if location.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now()
	bar := domain.Bar{
		OperatorID: operatorID,
		LocationID: req.LocationID,
		Name:       req.Name,
		OwnerName:  req.OwnerName,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	barID, err := s.barRepo.SaveBar(ctx, bar)
	if err != nil {
		logger.Error("Failed to save bar", slog.String("error", err.Error()))
		return nil, err
	}
	bar.BarID = barID

	logger.Info("Bar created", slog.Int64("bar_id", barID))
	return &bar, nil
}

func (s *barService) GetBarByID(ctx context.Context, barID int64, operatorID string) (*domain.Bar, error) {
	bar, err := s.barRepo.FindBarByID(ctx, barID)
	if err != nil {
		return nil, err
	}
	if bar.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return bar, nil
}

func (s *barService) ListBars(ctx context.Context, operatorID string, limit, offset int) ([]domain.Bar, error) {
	return s.barRepo.FindBarsByOperator(ctx, operatorID, limit, offset)
}

func (s *barService) UpdateBar(ctx context.Context, barID int64, req dto.UpdateBarRequest, operatorID string) (*domain.Bar, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bar, err := s.GetBarByID(ctx, barID, operatorID)
	if err != nil {
		return nil, err
	}

	if req.LocationID != nil {
		location, err := s.locationRepo.FindLocationByID(ctx, *req.LocationID)
		if err != nil {
			return nil, err
		}
		if location.OperatorID != operatorID {
			return nil, apperrors.ErrNotFound
		}
		bar.LocationID = *req.LocationID
	}
	if req.Name != nil {
		bar.Name = *req.Name
	}
	if req.OwnerName != nil {
		bar.OwnerName = *req.OwnerName
	}
	if req.Phone != nil {
		bar.Phone = *req.Phone
	}
	if req.Address != nil {
		bar.Address = *req.Address
	}
	bar.LastUpdatedAt = time.Now()
	bar.LastUpdatedBy = operatorID

	if err := s.barRepo.UpdateBar(ctx, *bar); err != nil {
		logger.Error("Failed to update bar", slog.String("error", err.Error()), slog.Int64("bar_id", barID))
		return nil, err
	}

	return bar, nil
}

func (s *barService) DeactivateBar(ctx context.Context, barID int64, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.barRepo.DeactivateBar(ctx, barID, operatorID, time.Now()); err != nil {
		return err
	}

	logger.Info("Bar deactivated", slog.Int64("bar_id", barID))
	return nil
}
