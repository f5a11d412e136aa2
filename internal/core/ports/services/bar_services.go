package services

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/dto"
)

// BarSvcFacade defines operations for managing bars.
type BarSvcFacade interface {
	// CreateBar registers a new bar under one of the operator's locations.
	CreateBar(ctx context.Context, req dto.CreateBarRequest, operatorID string) (*domain.Bar, error)

	// GetBarByID retrieves a bar owned by the operator.
	GetBarByID(ctx context.Context, barID int64, operatorID string) (*domain.Bar, error)

	// ListBars retrieves a page of the operator's bars.
	ListBars(ctx context.Context, operatorID string, limit, offset int) ([]domain.Bar, error)

	// UpdateBar updates a bar owned by the operator.
	UpdateBar(ctx context.Context, barID int64, req dto.UpdateBarRequest, operatorID string) (*domain.Bar, error)

	// DeactivateBar soft-deletes a bar owned by the operator.
	DeactivateBar(ctx context.Context, barID int64, operatorID string) error
}
