package repositories

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// OperatorReader defines read operations for operator data
type OperatorReader interface {
	// FindOperatorByID retrieves a specific operator by their ID.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// FindOperatorByUsername retrieves an operator by their login name.
	FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)

	// FindOperatorByEmail retrieves an operator by email (used for external sign-in matching).
	FindOperatorByEmail(ctx context.Context, email string) (*domain.Operator, error)
}

// OperatorWriter defines write operations for operator data
type OperatorWriter interface {
	// SaveOperator persists a new operator.
	SaveOperator(ctx context.Context, operator domain.Operator) error

	// UpdateOperator updates an existing operator's details.
	UpdateOperator(ctx context.Context, operator domain.Operator) error
}

// OperatorRepositoryFacade combines all operator-related repository interfaces
type OperatorRepositoryFacade interface {
	OperatorReader
	OperatorWriter
}
