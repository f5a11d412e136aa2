package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	"github.com/dartsops/darts_management_app/internal/models"
	"github.com/dartsops/darts_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCollectionRepository struct {
	BaseRepository
}

func newPgxCollectionRepository(db *pgxpool.Pool) portsrepo.CollectionRepositoryFacade {
	return &PgxCollectionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCollectionRepository implements portsrepo.CollectionRepositoryFacade
var _ portsrepo.CollectionRepositoryFacade = (*PgxCollectionRepository)(nil)

const collectionColumns = `collection_id, operator_id, machine_id, bar_id, bar_name,
		total_collection, bar_amount, business_amount, extra_amount,
		comments, status, created_at, created_by`

func scanCollection(row pgx.Row) (models.Collection, error) {
	var m models.Collection
	err := row.Scan(
		&m.CollectionID,
		&m.OperatorID,
		&m.MachineID,
		&m.BarID,
		&m.BarName,
		&m.TotalCollection,
		&m.BarAmount,
		&m.BusinessAmount,
		&m.ExtraAmount,
		&m.Comments,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// SaveCollection inserts a collection row and advances the machine counter by
// the collection total in a single transaction, so the ledger and the counter
// can never disagree. Returns the counter value after the advance.
func (r *PgxCollectionRepository) SaveCollection(ctx context.Context, record domain.CollectionRecord) (decimal.Decimal, error) {
	m := mapping.ToModelCollection(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	insertQuery := `
        INSERT INTO collections (collection_id, operator_id, machine_id, bar_id, bar_name,
            total_collection, bar_amount, business_amount, extra_amount,
            comments, status, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.CollectionID,
		m.OperatorID,
		m.MachineID,
		m.BarID,
		m.BarName,
		m.TotalCollection,
		m.BarAmount,
		m.BusinessAmount,
		m.ExtraAmount,
		m.Comments,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert collection: %w", err)
	}

	counterQuery := `
        UPDATE machines
        SET counter = counter + $1, last_updated_at = $2, last_updated_by = $3
        WHERE machine_id = $4 AND operator_id = $5
        RETURNING counter;
    `
	var newCounter decimal.Decimal
	err = tx.QueryRow(ctx, counterQuery,
		m.TotalCollection,
		m.CreatedAt,
		m.CreatedBy,
		m.MachineID,
		m.OperatorID,
	).Scan(&newCounter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("machine %d not found for counter advance: %w", m.MachineID, apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to advance machine counter: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newCounter, nil
}

func (r *PgxCollectionRepository) FindCollectionByID(ctx context.Context, collectionID string) (*domain.CollectionRecord, error) {
	query := `
		SELECT ` + collectionColumns + `
		FROM collections
		WHERE collection_id = $1;
	`
	m, err := scanCollection(r.Pool.QueryRow(ctx, query, collectionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collection by ID %s: %w", collectionID, err)
	}

	d := mapping.ToDomainCollection(m)
	return &d, nil
}

// listCollections runs a history page query. filterClause and filterArgs
// narrow the result beyond the operator scope; the cursor, when present, keeps
// rows strictly before the (created_at, collection_id) position of the last
// row already served, keeping pages stable while new records arrive.
func (r *PgxCollectionRepository) listCollections(ctx context.Context, operatorID string, limit int, cursor *domain.CollectionCursor, filterClause string, filterArgs ...interface{}) ([]domain.CollectionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	baseQuery := `
        SELECT ` + collectionColumns + `
        FROM collections
        WHERE operator_id = $1`
	args := []interface{}{operatorID}

	if filterClause != "" {
		baseQuery += " AND " + filterClause
		args = append(args, filterArgs...)
	}

	if cursor != nil {
		cursorClause := " AND (created_at, collection_id) < ($" + strconv.Itoa(len(args)+1) + ", $" + strconv.Itoa(len(args)+2) + ")"
		baseQuery += cursorClause
		args = append(args, cursor.CreatedAt, cursor.CollectionID)
	}

	query := baseQuery + `
        ORDER BY created_at DESC, collection_id DESC
        LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	modelCollections := []models.Collection{}
	for rows.Next() {
		m, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		modelCollections = append(modelCollections, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", rows.Err())
	}

	return mapping.ToDomainCollectionSlice(modelCollections), nil
}

func (r *PgxCollectionRepository) ListCollections(ctx context.Context, operatorID string, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	return r.listCollections(ctx, operatorID, limit, cursor, "")
}

func (r *PgxCollectionRepository) ListCollectionsByMachine(ctx context.Context, operatorID string, machineID int64, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	return r.listCollections(ctx, operatorID, limit, cursor, "machine_id = $2", machineID)
}

func (r *PgxCollectionRepository) ListCollectionsInRange(ctx context.Context, operatorID string, from, to time.Time, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	return r.listCollections(ctx, operatorID, limit, cursor, "created_at >= $2 AND created_at < $3", from, to)
}
