package mapping

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/models"
)

// ToModelLocation converts a domain Location to a model Location
func ToModelLocation(d domain.Location) models.Location {
	return models.Location{
		LocationID:  d.LocationID,
		OperatorID:  d.OperatorID,
		Name:        d.Name,
		City:        d.City,
		Notes:       d.Notes,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLocation converts a model Location to a domain Location
func ToDomainLocation(m models.Location) domain.Location {
	return domain.Location{
		LocationID:  m.LocationID,
		OperatorID:  m.OperatorID,
		Name:        m.Name,
		City:        m.City,
		Notes:       m.Notes,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLocationSlice converts a slice of model Locations to domain Locations
func ToDomainLocationSlice(ms []models.Location) []domain.Location {
	ds := make([]domain.Location, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLocation(m)
	}
	return ds
}
