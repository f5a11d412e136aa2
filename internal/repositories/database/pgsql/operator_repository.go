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

type PgxOperatorRepository struct {
	db *pgxpool.Pool
}

func newPgxOperatorRepository(db *pgxpool.Pool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{db: db}
}

// Ensure PgxOperatorRepository implements portsrepo.OperatorRepositoryFacade
var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

const operatorColumns = `operator_id, name, username, email, password_hash, auth_provider, provider_user_id, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanOperator(row pgx.Row) (models.Operator, error) {
	var m models.Operator
	err := row.Scan(
		&m.OperatorID,
		&m.Name,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	query := `
        INSERT INTO operators (operator_id, name, username, email, password_hash, auth_provider, provider_user_id, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.OperatorID,
		m.Name,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: operator with username %s or email %s already exists", apperrors.ErrDuplicate, m.Username, m.Email)
			}
		}
		return fmt.Errorf("failed to save operator: %w", err)
	}
	return nil
}

func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE operator_id = $1 AND is_active = TRUE;
	`
	m, err := scanOperator(r.db.QueryRow(ctx, query, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by ID %s: %w", operatorID, err)
	}

	d := mapping.ToDomainOperator(m)
	return &d, nil
}

func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE username = $1 AND is_active = TRUE;
	`
	m, err := scanOperator(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by username: %w", err)
	}

	d := mapping.ToDomainOperator(m)
	return &d, nil
}

func (r *PgxOperatorRepository) FindOperatorByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE email = $1 AND is_active = TRUE;
	`
	m, err := scanOperator(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by email: %w", err)
	}

	d := mapping.ToDomainOperator(m)
	return &d, nil
}

func (r *PgxOperatorRepository) UpdateOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	query := `
        UPDATE operators
        SET name = $1, email = $2, password_hash = $3, last_updated_at = $4, last_updated_by = $5
        WHERE operator_id = $6 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.OperatorID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update operator query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("operator not found or deactivated: %w", apperrors.ErrNotFound)
	}
	return nil
}
