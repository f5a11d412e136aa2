package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/dartsops/darts_management_app/internal/utils"
	"github.com/google/uuid"
)

type operatorService struct {
	operatorRepo portsrepo.OperatorRepositoryFacade
}

// NewOperatorService creates the operator account service.
func NewOperatorService(operatorRepo portsrepo.OperatorRepositoryFacade) portssvc.OperatorSvcFacade {
	return &operatorService{operatorRepo: operatorRepo}
}

var _ portssvc.OperatorSvcFacade = (*operatorService)(nil)

func (s *operatorService) RegisterOperator(ctx context.Context, req dto.RegisterOperatorRequest) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	operatorID := uuid.NewString()
	operator := domain.Operator{
		OperatorID:   operatorID,
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save operator", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register operator: %w", err)
	}

	logger.Info("Operator registered", slog.String("operator_id", operator.OperatorID))
	return &operator, nil
}

func (s *operatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get operator by ID: %w", err)
	}
	return operator, nil
}

func (s *operatorService) GetOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get operator by username: %w", err)
	}
	return operator, nil
}

func (s *operatorService) AuthenticateOperator(ctx context.Context, username, password string) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a bad password so usernames cannot be probed.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up operator for authentication: %w", err)
	}

	if operator.AuthProvider != domain.ProviderLocal || operator.PasswordHash == "" {
		logger.Warn("Password login attempted for external-provider account", slog.String("operator_id", operator.OperatorID))
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, operator.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return operator, nil
}

func (s *operatorService) UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingOperatorID string) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if operatorID != requestingOperatorID {
		return nil, apperrors.ErrForbidden
	}

	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		operator.Name = *req.Name
	}
	if req.Email != nil {
		operator.Email = *req.Email
	}
	operator.LastUpdatedAt = time.Now()
	operator.LastUpdatedBy = requestingOperatorID

	if err := s.operatorRepo.UpdateOperator(ctx, *operator); err != nil {
		logger.Error("Failed to update operator", slog.String("error", err.Error()), slog.String("operator_id", operatorID))
		return nil, err
	}

	return operator, nil
}

func (s *operatorService) FindOrCreateGoogleOperator(ctx context.Context, info domain.GoogleUserInfo) (*domain.Operator, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := s.operatorRepo.FindOperatorByEmail(ctx, info.Email)
	if err == nil {
		return operator, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to match google identity to operator: %w", err)
	}

	now := time.Now()
	operatorID := uuid.NewString()
	newOperator := domain.Operator{
		OperatorID:     operatorID,
		Name:           info.Name,
		Username:       info.Email, // Email doubles as the login name for Google accounts
		Email:          info.Email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.operatorRepo.SaveOperator(ctx, newOperator); err != nil {
		logger.Error("Failed to create operator from google identity", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create operator from google identity: %w", err)
	}

	logger.Info("Operator created from google sign-in", slog.String("operator_id", newOperator.OperatorID))
	return &newOperator, nil
}
