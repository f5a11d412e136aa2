package mapping

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/models"
)

// ToModelOperator converts a domain Operator to a model Operator
func ToModelOperator(d domain.Operator) models.Operator {
	return models.Operator{
		OperatorID:     d.OperatorID,
		Name:           d.Name,
		Username:       d.Username,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: d.ProviderUserID,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperator converts a model Operator to a domain Operator
func ToDomainOperator(m models.Operator) domain.Operator {
	return domain.Operator{
		OperatorID:     m.OperatorID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
