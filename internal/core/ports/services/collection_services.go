package services

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/dto"
)

// CollectionSvcFacade defines operations for recording and browsing collections.
type CollectionSvcFacade interface {
	// CreateCollection validates and finalizes the revenue split, persists the
	// record, advances the machine counter and returns the record with the
	// before/after odometer pair.
	CreateCollection(ctx context.Context, req dto.CreateCollectionRequest, operatorID string) (*domain.CollectionRecord, *domain.MachineCounter, error)

	// GetCollectionByID retrieves one collection record owned by the operator.
	GetCollectionByID(ctx context.Context, collectionID string, operatorID string) (*domain.CollectionRecord, error)

	// ListCollections retrieves one page of the operator's collection history,
	// newest first, using token-based pagination. The returned token is nil
	// when there are no further pages.
	ListCollections(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.CollectionRecord, *string, error)

	// ListCollectionsByMachine is ListCollections restricted to one machine.
	ListCollectionsByMachine(ctx context.Context, operatorID string, machineID int64, limit int, nextToken *string) ([]domain.CollectionRecord, *string, error)

	// ValidateDraft recomputes the split for an uncommitted draft so the entry
	// screen can show the operator the resulting amounts before submitting.
	ValidateDraft(ctx context.Context, req dto.CreateCollectionRequest) (*dto.CollectionDraftResponse, error)
}

// ExportSvcFacade produces the date-ranged collection report.
type ExportSvcFacade interface {
	// Export renders all collections in [from, to) joined with machine and bar
	// reference data into a spreadsheet file. Format is "csv" or "xlsx".
	Export(ctx context.Context, operatorID string, params dto.ExportParams) (*domain.ExportFile, error)
}
