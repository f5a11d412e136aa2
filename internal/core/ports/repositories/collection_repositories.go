package repositories

import (
	"context"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionWriter defines write operations for collection records.
// Records are insert-only: there is deliberately no update or delete.
type CollectionWriter interface {
	// SaveCollection persists a new collection record and, in the same
	// database transaction, advances the machine's running counter by the
	// collection total. It returns the counter value after the advance.
	SaveCollection(ctx context.Context, record domain.CollectionRecord) (decimal.Decimal, error)
}

// CollectionReader defines read operations for collection records.
type CollectionReader interface {
	// FindCollectionByID retrieves a single collection record.
	FindCollectionByID(ctx context.Context, collectionID string) (*domain.CollectionRecord, error)

	// ListCollections retrieves one page of an operator's collection history,
	// newest first, ordered by (created_at, collection_id) descending. A nil
	// cursor requests the first page.
	ListCollections(ctx context.Context, operatorID string, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error)

	// ListCollectionsByMachine is ListCollections restricted to one machine.
	ListCollectionsByMachine(ctx context.Context, operatorID string, machineID int64, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error)

	// ListCollectionsInRange retrieves one page of collections whose creation
	// time falls in [from, to), with the same ordering and cursor semantics
	// as ListCollections.
	ListCollectionsInRange(ctx context.Context, operatorID string, from, to time.Time, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error)
}

// CollectionRepositoryFacade combines all collection-related repository interfaces
type CollectionRepositoryFacade interface {
	CollectionReader
	CollectionWriter
}
