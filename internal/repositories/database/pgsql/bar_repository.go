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

type PgxBarRepository struct {
	db *pgxpool.Pool
}

func newPgxBarRepository(db *pgxpool.Pool) portsrepo.BarRepositoryFacade {
	return &PgxBarRepository{db: db}
}

// Ensure PgxBarRepository implements portsrepo.BarRepositoryFacade
var _ portsrepo.BarRepositoryFacade = (*PgxBarRepository)(nil)

const barColumns = `bar_id, operator_id, location_id, name, owner_name, phone, address, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBar(row pgx.Row) (models.Bar, error) {
	var m models.Bar
	err := row.Scan(
		&m.BarID,
		&m.OperatorID,
		&m.LocationID,
		&m.Name,
		&m.OwnerName,
		&m.Phone,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBarRepository) SaveBar(ctx context.Context, bar domain.Bar) (int64, error) {
	m := mapping.ToModelBar(bar)
	query := `
        INSERT INTO bars (operator_id, location_id, name, owner_name, phone, address, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING bar_id;
    `
	var barID int64
	err := r.db.QueryRow(ctx, query,
		m.OperatorID,
		m.LocationID,
		m.Name,
		m.OwnerName,
		m.Phone,
		m.Address,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&barID)
	if err != nil {
		return 0, fmt.Errorf("failed to save bar: %w", err)
	}
	return barID, nil
}

func (r *PgxBarRepository) FindBarByID(ctx context.Context, barID int64) (*domain.Bar, error) {
	query := `
		SELECT ` + barColumns + `
		FROM bars
		WHERE bar_id = $1 AND is_active = TRUE;
	`
	m, err := scanBar(r.db.QueryRow(ctx, query, barID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bar by ID %d: %w", barID, err)
	}

	d := mapping.ToDomainBar(m)
	return &d, nil
}

func (r *PgxBarRepository) FindBarsByOperator(ctx context.Context, operatorID string, limit int, offset int) ([]domain.Bar, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + barColumns + `
        FROM bars
        WHERE operator_id = $1 AND is_active = TRUE
        ORDER BY name ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bars: %w", err)
	}
	defer rows.Close()

	modelBars := []models.Bar{}
	for rows.Next() {
		m, err := scanBar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bar row: %w", err)
		}
		modelBars = append(modelBars, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bar rows: %w", rows.Err())
	}

	return mapping.ToDomainBarSlice(modelBars), nil
}

func (r *PgxBarRepository) FindAllBarsByOperator(ctx context.Context, operatorID string) ([]domain.Bar, error) {
	query := `
        SELECT ` + barColumns + `
        FROM bars
        WHERE operator_id = $1 AND is_active = TRUE
        ORDER BY bar_id ASC;
    `
	rows, err := r.db.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bars: %w", err)
	}
	defer rows.Close()

	modelBars := []models.Bar{}
	for rows.Next() {
		m, err := scanBar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bar row: %w", err)
		}
		modelBars = append(modelBars, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bar rows: %w", rows.Err())
	}

	return mapping.ToDomainBarSlice(modelBars), nil
}

func (r *PgxBarRepository) UpdateBar(ctx context.Context, bar domain.Bar) error {
	m := mapping.ToModelBar(bar)
	query := `
        UPDATE bars
        SET location_id = $1, name = $2, owner_name = $3, phone = $4, address = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE bar_id = $8 AND operator_id = $9 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.LocationID,
		m.Name,
		m.OwnerName,
		m.Phone,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BarID,
		m.OperatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update bar query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bar not found or deactivated: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBarRepository) DeactivateBar(ctx context.Context, barID int64, operatorID string, now time.Time) error {
	query := `
        UPDATE bars
        SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE bar_id = $3 AND operator_id = $2 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, now, operatorID, barID)
	if err != nil {
		return fmt.Errorf("failed to deactivate bar: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bar not found or already deactivated: %w", apperrors.ErrNotFound)
	}
	return nil
}
