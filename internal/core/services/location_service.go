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
	"github.com/google/uuid"
)

type locationService struct {
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates the location management service.
func NewLocationService(locationRepo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, operatorID string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	location := domain.Location{
		LocationID: uuid.NewString(),
		OperatorID: operatorID,
		Name:       req.Name,
		City:       req.City,
		Notes:      req.Notes,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		logger.Error("Failed to save location", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Location created", slog.String("location_id", location.LocationID))
	return &location, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, locationID string, operatorID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location.OperatorID != operatorID {
		// Hidden rather than forbidden: operators cannot learn about each other's data.
		return nil, apperrors.ErrNotFound
	}
	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context, operatorID string, limit, offset int) ([]domain.Location, error) {
	return s.locationRepo.FindLocationsByOperator(ctx, operatorID, limit, offset)
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, operatorID string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	location, err := s.GetLocationByID(ctx, locationID, operatorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Notes != nil {
		location.Notes = *req.Notes
	}
	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = operatorID

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		logger.Error("Failed to update location", slog.String("error", err.Error()), slog.String("location_id", locationID))
		return nil, err
	}

	return location, nil
}

func (s *locationService) DeactivateLocation(ctx context.Context, locationID string, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.locationRepo.DeactivateLocation(ctx, locationID, operatorID, time.Now()); err != nil {
		return err
	}

	logger.Info("Location deactivated", slog.String("location_id", locationID))
	return nil
}
