package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	"github.com/dartsops/darts_management_app/internal/models"
	"github.com/dartsops/darts_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMachineRepository struct {
	db *pgxpool.Pool
}

func newPgxMachineRepository(db *pgxpool.Pool) portsrepo.MachineRepositoryFacade {
	return &PgxMachineRepository{db: db}
}

// Ensure PgxMachineRepository implements portsrepo.MachineRepositoryFacade
var _ portsrepo.MachineRepositoryFacade = (*PgxMachineRepository)(nil)

const machineColumns = `machine_id, operator_id, bar_id, name, serial_number, counter, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanMachine(row pgx.Row) (models.Machine, error) {
	var m models.Machine
	err := row.Scan(
		&m.MachineID,
		&m.OperatorID,
		&m.BarID,
		&m.Name,
		&m.SerialNumber,
		&m.Counter,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanMachineRows(rows pgx.Rows) ([]models.Machine, error) {
	defer rows.Close()

	modelMachines := []models.Machine{}
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan machine row: %w", err)
		}
		modelMachines = append(modelMachines, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating machine rows: %w", rows.Err())
	}
	return modelMachines, nil
}

func (r *PgxMachineRepository) SaveMachine(ctx context.Context, machine domain.Machine) (int64, error) {
	m := mapping.ToModelMachine(machine)
	query := `
        INSERT INTO machines (operator_id, bar_id, name, serial_number, counter, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING machine_id;
    `
	var machineID int64
	err := r.db.QueryRow(ctx, query,
		m.OperatorID,
		m.BarID,
		m.Name,
		m.SerialNumber,
		m.Counter,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&machineID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return 0, fmt.Errorf("%w: machine with serial number %s already exists", apperrors.ErrDuplicate, m.SerialNumber)
			}
		}
		return 0, fmt.Errorf("failed to save machine: %w", err)
	}
	return machineID, nil
}

func (r *PgxMachineRepository) FindMachineByID(ctx context.Context, machineID int64) (*domain.Machine, error) {
	query := `
		SELECT ` + machineColumns + `
		FROM machines
		WHERE machine_id = $1;
	`
	m, err := scanMachine(r.db.QueryRow(ctx, query, machineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find machine by ID %d: %w", machineID, err)
	}

	d := mapping.ToDomainMachine(m)
	return &d, nil
}

func (r *PgxMachineRepository) FindMachinesByOperator(ctx context.Context, operatorID string, limit int, offset int) ([]domain.Machine, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + machineColumns + `
        FROM machines
        WHERE operator_id = $1 AND is_active = TRUE
        ORDER BY machine_id ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query machines: %w", err)
	}

	modelMachines, err := scanMachineRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMachineSlice(modelMachines), nil
}

func (r *PgxMachineRepository) FindMachinesByBar(ctx context.Context, barID int64) ([]domain.Machine, error) {
	query := `
        SELECT ` + machineColumns + `
        FROM machines
        WHERE bar_id = $1 AND is_active = TRUE
        ORDER BY machine_id ASC;
    `
	rows, err := r.db.Query(ctx, query, barID)
	if err != nil {
		return nil, fmt.Errorf("failed to query machines by bar: %w", err)
	}

	modelMachines, err := scanMachineRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMachineSlice(modelMachines), nil
}

func (r *PgxMachineRepository) FindAllMachinesByOperator(ctx context.Context, operatorID string) ([]domain.Machine, error) {
	query := `
        SELECT ` + machineColumns + `
        FROM machines
        WHERE operator_id = $1
        ORDER BY machine_id ASC;
    `
	rows, err := r.db.Query(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query machines: %w", err)
	}

	modelMachines, err := scanMachineRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMachineSlice(modelMachines), nil
}

func (r *PgxMachineRepository) UpdateMachine(ctx context.Context, machine domain.Machine) error {
	m := mapping.ToModelMachine(machine)
	// The counter column is deliberately absent: it only moves through
	// SaveCollection so a stale read can never rewind it.
	query := `
        UPDATE machines
        SET bar_id = $1, name = $2, serial_number = $3, is_active = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE machine_id = $7 AND operator_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.BarID,
		m.Name,
		m.SerialNumber,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.MachineID,
		m.OperatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update machine query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("machine not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
