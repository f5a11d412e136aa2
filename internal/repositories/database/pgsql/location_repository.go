package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	"github.com/dartsops/darts_management_app/internal/models"
	"github.com/dartsops/darts_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLocationRepository struct {
	db *pgxpool.Pool
}

func newPgxLocationRepository(db *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{db: db}
}

// Ensure PgxLocationRepository implements portsrepo.LocationRepositoryFacade
var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, operator_id, name, city, notes, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (models.Location, error) {
	var m models.Location
	err := row.Scan(
		&m.LocationID,
		&m.OperatorID,
		&m.Name,
		&m.City,
		&m.Notes,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
        INSERT INTO locations (location_id, operator_id, name, city, notes, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.LocationID,
		m.OperatorID,
		m.Name,
		m.City,
		m.Notes,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE location_id = $1 AND is_active = TRUE;
	`
	m, err := scanLocation(r.db.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location by ID %s: %w", locationID, err)
	}

	d := mapping.ToDomainLocation(m)
	return &d, nil
}

func (r *PgxLocationRepository) FindLocationsByOperator(ctx context.Context, operatorID string, limit int, offset int) ([]domain.Location, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + locationColumns + `
        FROM locations
        WHERE operator_id = $1 AND is_active = TRUE
        ORDER BY name ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	modelLocations := []models.Location{}
	for rows.Next() {
		m, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		modelLocations = append(modelLocations, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", rows.Err())
	}

	return mapping.ToDomainLocationSlice(modelLocations), nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	m := mapping.ToModelLocation(location)
	query := `
        UPDATE locations
        SET name = $1, city = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
        WHERE location_id = $6 AND operator_id = $7 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.City,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LocationID,
		m.OperatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update location query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location not found or deactivated: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLocationRepository) DeactivateLocation(ctx context.Context, locationID string, operatorID string, now time.Time) error {
	query := `
        UPDATE locations
        SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE location_id = $3 AND operator_id = $2 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, now, operatorID, locationID)
	if err != nil {
		return fmt.Errorf("failed to deactivate location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location not found or already deactivated: %w", apperrors.ErrNotFound)
	}
	return nil
}
