package mapping

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/models"
)

// ToModelBar converts a domain Bar to a model Bar
func ToModelBar(d domain.Bar) models.Bar {
	return models.Bar{
		BarID:       d.BarID,
		OperatorID:  d.OperatorID,
		LocationID:  d.LocationID,
		Name:        d.Name,
		OwnerName:   d.OwnerName,
		Phone:       d.Phone,
		Address:     d.Address,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBar converts a model Bar to a domain Bar
func ToDomainBar(m models.Bar) domain.Bar {
	return domain.Bar{
		BarID:       m.BarID,
		OperatorID:  m.OperatorID,
		LocationID:  m.LocationID,
		Name:        m.Name,
		OwnerName:   m.OwnerName,
		Phone:       m.Phone,
		Address:     m.Address,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBarSlice converts a slice of model Bars to domain Bars
func ToDomainBarSlice(ms []models.Bar) []domain.Bar {
	ds := make([]domain.Bar, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBar(m)
	}
	return ds
}
