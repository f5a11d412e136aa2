package mapping

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/models"
)

// ToModelMachine converts a domain Machine to a model Machine
func ToModelMachine(d domain.Machine) models.Machine {
	return models.Machine{
		MachineID:    d.MachineID,
		OperatorID:   d.OperatorID,
		BarID:        d.BarID,
		Name:         d.Name,
		SerialNumber: d.SerialNumber,
		Counter:      d.Counter,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMachine converts a model Machine to a domain Machine
func ToDomainMachine(m models.Machine) domain.Machine {
	return domain.Machine{
		MachineID:    m.MachineID,
		OperatorID:   m.OperatorID,
		BarID:        m.BarID,
		Name:         m.Name,
		SerialNumber: m.SerialNumber,
		Counter:      m.Counter,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMachineSlice converts a slice of model Machines to domain Machines
func ToDomainMachineSlice(ms []models.Machine) []domain.Machine {
	ds := make([]domain.Machine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMachine(m)
	}
	return ds
}
