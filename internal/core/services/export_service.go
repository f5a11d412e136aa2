package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/dartsops/darts_management_app/pkg/retry"
	"golang.org/x/sync/errgroup"
)

const exportDateLayout = "2006-01-02"

var exportHeaders = []string{"Bar", "Machine ID", "Machine", "Business Amount", "Bar Amount", "Total", "Date", "Comments"}

type exportService struct {
	collectionRepo portsrepo.CollectionRepositoryFacade
	machineRepo    portsrepo.MachineRepositoryFacade
	barRepo        portsrepo.BarRepositoryFacade
	sinks          map[string]portsrepo.ReportSink
	pageSize       int
	retryPolicy    retry.Policy
}

// NewExportService creates the date-range report service. sinks maps the
// format query value to the sink that renders it.
func NewExportService(collectionRepo portsrepo.CollectionRepositoryFacade, machineRepo portsrepo.MachineRepositoryFacade, barRepo portsrepo.BarRepositoryFacade, sinks map[string]portsrepo.ReportSink, pageSize int, retryPolicy retry.Policy) portssvc.ExportSvcFacade {
	if pageSize <= 0 {
		pageSize = 500
	}
	return &exportService{
		collectionRepo: collectionRepo,
		machineRepo:    machineRepo,
		barRepo:        barRepo,
		sinks:          sinks,
		pageSize:       pageSize,
		retryPolicy:    retryPolicy,
	}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) Export(ctx context.Context, operatorID string, params dto.ExportParams) (*domain.ExportFile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from, to, err := parseExportRange(params)
	if err != nil {
		return nil, err
	}

	sink, ok := s.sinks[params.Format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, params.Format)
	}

	// The three sources are independent, so fetch them concurrently and join
	// once all have landed. Any failure fails the whole export; a report with
	// silently missing reference data is worse than no report.
	var (
		collections []domain.CollectionRecord
		machines    []domain.Machine
		bars        []domain.Bar
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		walker := NewHistoryWalker(func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
			return s.collectionRepo.ListCollectionsInRange(ctx, operatorID, from, to, limit, cursor)
		}, s.pageSize)
		var err error
		collections, err = walker.DrainAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		machines, err = retry.Do(gctx, s.retryPolicy, func(ctx context.Context) ([]domain.Machine, error) {
			return s.machineRepo.FindAllMachinesByOperator(ctx, operatorID)
		})
		return err
	})
	g.Go(func() error {
		var err error
		bars, err = retry.Do(gctx, s.retryPolicy, func(ctx context.Context) ([]domain.Bar, error) {
			return s.barRepo.FindAllBarsByOperator(ctx, operatorID)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Export data fetch failed", slog.String("error", err.Error()))
		return nil, err
	}

	machinesByID := make(map[int64]domain.Machine, len(machines))
	for _, m := range machines {
		machinesByID[m.MachineID] = m
	}
	barsByID := make(map[int64]domain.Bar, len(bars))
	for _, b := range bars {
		barsByID[b.BarID] = b
	}

	rows := make([]domain.ExportRow, 0, len(collections))
	for _, c := range collections {
		machine, ok := machinesByID[c.MachineID]
		if !ok {
			// A collection without its machine cannot be reported meaningfully.
			logger.Warn("Dropping collection with unknown machine from export",
				slog.String("collection_id", c.CollectionID),
				slog.Int64("machine_id", c.MachineID))
			continue
		}
		barName := ""
		if bar, ok := barsByID[machine.BarID]; ok {
			barName = bar.Name
		}
		rows = append(rows, domain.ExportRow{
			BarName:         barName,
			MachineID:       machine.MachineID,
			MachineName:     machine.Name,
			BusinessAmount:  c.BusinessAmount,
			BarAmount:       c.BarAmount,
			TotalCollection: c.TotalCollection,
			Date:            c.CreatedAt,
			Comments:        c.Comments,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MachineID != rows[j].MachineID {
			return rows[i].MachineID < rows[j].MachineID
		}
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].BarName < rows[j].BarName
	})

	rendered := make([][]string, len(rows))
	for i, row := range rows {
		rendered[i] = []string{
			row.BarName,
			fmt.Sprintf("%d", row.MachineID),
			row.MachineName,
			row.BusinessAmount.StringFixed(2),
			row.BarAmount.StringFixed(2),
			row.TotalCollection.StringFixed(2),
			row.Date.Format("02/01/2006"),
			row.Comments,
		}
	}

	fileBase := fmt.Sprintf("Collections_Export_%s_%s", from.Format(exportDateLayout), to.Format(exportDateLayout))
	file, err := sink.Render(fileBase, exportHeaders, rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	logger.Info("Export rendered",
		slog.String("format", params.Format),
		slog.Int("rows", len(rendered)),
		slog.Time("from", from),
		slog.Time("to", to))
	return file, nil
}

// parseExportRange turns the request dates into the [from, to) window.
// toDate is exclusive and defaults to now when absent.
func parseExportRange(params dto.ExportParams) (time.Time, time.Time, error) {
	from, err := time.Parse(exportDateLayout, params.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid fromDate %q", apperrors.ErrValidation, params.FromDate)
	}

	to := time.Now().UTC()
	if params.ToDate != "" {
		to, err = time.Parse(exportDateLayout, params.ToDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid toDate %q", apperrors.ErrValidation, params.ToDate)
		}
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fromDate must be before toDate", apperrors.ErrValidation)
	}
	return from, to, nil
}
