package services

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/dto"
)

// LocationSvcFacade defines operations for managing locations.
type LocationSvcFacade interface {
	// CreateLocation registers a new location for the operator.
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, operatorID string) (*domain.Location, error)

	// GetLocationByID retrieves a location owned by the operator.
	GetLocationByID(ctx context.Context, locationID string, operatorID string) (*domain.Location, error)

	// ListLocations retrieves a page of the operator's locations.
	ListLocations(ctx context.Context, operatorID string, limit, offset int) ([]domain.Location, error)

	// UpdateLocation updates a location owned by the operator.
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, operatorID string) (*domain.Location, error)

	// DeactivateLocation soft-deletes a location owned by the operator.
	DeactivateLocation(ctx context.Context, locationID string, operatorID string) error
}
