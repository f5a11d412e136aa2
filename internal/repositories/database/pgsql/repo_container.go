package pgsql

import (
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	operatorRepo := newPgxOperatorRepository(dbPool)
	locationRepo := newPgxLocationRepository(dbPool)
	barRepo := newPgxBarRepository(dbPool)
	machineRepo := newPgxMachineRepository(dbPool)
	collectionRepo := newPgxCollectionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OperatorRepo:   operatorRepo,
		LocationRepo:   locationRepo,
		BarRepo:        barRepo,
		MachineRepo:    machineRepo,
		CollectionRepo: collectionRepo,
	}
}
