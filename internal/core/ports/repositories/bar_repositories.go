package repositories

import (
	"context"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// BarReader defines read operations for bar data
type BarReader interface {
	// FindBarByID retrieves a specific bar.
	FindBarByID(ctx context.Context, barID int64) (*domain.Bar, error)

	// FindBarsByOperator retrieves a paginated list of an operator's bars.
	FindBarsByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Bar, error)

	// FindAllBarsByOperator retrieves the operator's whole bar directory.
	// Used by the exporter, which joins wholesale rather than server-side.
	FindAllBarsByOperator(ctx context.Context, operatorID string) ([]domain.Bar, error)
}

// BarWriter defines write operations for bar data
type BarWriter interface {
	// SaveBar persists a new bar and returns its assigned ID.
	SaveBar(ctx context.Context, bar domain.Bar) (int64, error)

	// UpdateBar updates an existing bar's details.
	UpdateBar(ctx context.Context, bar domain.Bar) error

	// DeactivateBar soft-deletes a bar.
	DeactivateBar(ctx context.Context, barID int64, operatorID string, now time.Time) error
}

// BarRepositoryFacade combines all bar-related repository interfaces
type BarRepositoryFacade interface {
	BarReader
	BarWriter
}
