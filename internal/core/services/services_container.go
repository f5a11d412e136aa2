package services

import (
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/platform/config"
	"github.com/dartsops/darts_management_app/internal/repositories/export"
	"github.com/dartsops/darts_management_app/pkg/retry"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Operator = NewOperatorService(repos.OperatorRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Location = NewLocationService(repos.LocationRepo)
	container.Bar = NewBarService(repos.BarRepo, repos.LocationRepo)
	container.Machine = NewMachineService(repos.MachineRepo, repos.BarRepo)
	container.Collection = NewCollectionService(repos.CollectionRepo, repos.MachineRepo, repos.BarRepo, cfg.DefaultPageSize, cfg.MaxPageSize)

	container.Export = NewExportService(
		repos.CollectionRepo,
		repos.MachineRepo,
		repos.BarRepo,
		map[string]portsrepo.ReportSink{
			"csv":  export.NewCSVSink(),
			"xlsx": export.NewXLSXSink(),
		},
		cfg.ExportPageSize,
		retry.Policy{Attempts: cfg.ExportRetryCount, Backoff: cfg.ExportRetryBackoff},
	)

	return container
}
