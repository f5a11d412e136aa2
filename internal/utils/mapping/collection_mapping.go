package mapping

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/models"
)

// ToModelCollection converts a domain CollectionRecord to a model Collection
func ToModelCollection(d domain.CollectionRecord) models.Collection {
	return models.Collection{
		CollectionID:    d.CollectionID,
		OperatorID:      d.OperatorID,
		MachineID:       d.MachineID,
		BarID:           d.BarID,
		BarName:         d.BarName,
		TotalCollection: d.TotalCollection,
		BarAmount:       d.BarAmount,
		BusinessAmount:  d.BusinessAmount,
		ExtraAmount:     d.ExtraAmount,
		Comments:        d.Comments,
		Status:          models.CollectionStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainCollection converts a model Collection to a domain CollectionRecord
func ToDomainCollection(m models.Collection) domain.CollectionRecord {
	return domain.CollectionRecord{
		CollectionID:    m.CollectionID,
		OperatorID:      m.OperatorID,
		MachineID:       m.MachineID,
		BarID:           m.BarID,
		BarName:         m.BarName,
		TotalCollection: m.TotalCollection,
		BarAmount:       m.BarAmount,
		BusinessAmount:  m.BusinessAmount,
		ExtraAmount:     m.ExtraAmount,
		Comments:        m.Comments,
		Status:          domain.CollectionStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainCollectionSlice converts a slice of model Collections to domain CollectionRecords
func ToDomainCollectionSlice(ms []models.Collection) []domain.CollectionRecord {
	ds := make([]domain.CollectionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCollection(m)
	}
	return ds
}
