package services

import (
	"context"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/dto"
)

// OperatorReaderSvc defines read operations for operator data
type OperatorReaderSvc interface {
	// GetOperatorByID retrieves an operator by ID.
	GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// GetOperatorByUsername retrieves an operator by username.
	GetOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// OperatorWriterSvc defines write operations for operator data
type OperatorWriterSvc interface {
	// RegisterOperator creates a new password-authenticated operator account.
	RegisterOperator(ctx context.Context, req dto.RegisterOperatorRequest) (*domain.Operator, error)

	// UpdateOperator updates an existing operator. Operators may only update themselves.
	UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingOperatorID string) (*domain.Operator, error)

	// FindOrCreateGoogleOperator matches a verified Google identity to an
	// operator account, creating one on first sign-in.
	FindOrCreateGoogleOperator(ctx context.Context, info domain.GoogleUserInfo) (*domain.Operator, error)
}

// OperatorAuthSvc defines operations for operator authentication
type OperatorAuthSvc interface {
	// AuthenticateOperator authenticates with username and password.
	AuthenticateOperator(ctx context.Context, username, password string) (*domain.Operator, error)
}

// OperatorSvcFacade combines all operator-related service interfaces
type OperatorSvcFacade interface {
	OperatorReaderSvc
	OperatorWriterSvc
	OperatorAuthSvc
}
