package repositories

import (
	"context"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// LocationReader defines read operations for location data
type LocationReader interface {
	// FindLocationByID retrieves a specific location.
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// FindLocationsByOperator retrieves a paginated list of an operator's locations.
	FindLocationsByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Location, error)
}

// LocationWriter defines write operations for location data
type LocationWriter interface {
	// SaveLocation persists a new location.
	SaveLocation(ctx context.Context, location domain.Location) error

	// UpdateLocation updates an existing location's details.
	UpdateLocation(ctx context.Context, location domain.Location) error

	// DeactivateLocation soft-deletes a location.
	DeactivateLocation(ctx context.Context, locationID string, operatorID string, now time.Time) error
}

// LocationRepositoryFacade combines all location-related repository interfaces
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
