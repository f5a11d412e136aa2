package dto

import (
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// RegisterOperatorRequest defines the data needed to create a new operator account.
type RegisterOperatorRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for a password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the ID token obtained by the mobile client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateOperatorRequest defines the data allowed for updating an operator.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOperatorRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// OperatorResponse defines the data returned for an operator.
type OperatorResponse struct {
	OperatorID   string    `json:"operatorID"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToOperatorResponse converts a domain.Operator to OperatorResponse DTO
func ToOperatorResponse(op *domain.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID:   op.OperatorID,
		Name:         op.Name,
		Username:     op.Username,
		Email:        op.Email,
		AuthProvider: string(op.AuthProvider),
		IsActive:     op.IsActive,
		CreatedAt:    op.CreatedAt,
	}
}
