package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/dartsops/darts_management_app/internal/utils/pagination"
	"github.com/dartsops/darts_management_app/internal/utils/splitting"
	"github.com/google/uuid"
)

type collectionService struct {
	collectionRepo  portsrepo.CollectionRepositoryFacade
	machineRepo     portsrepo.MachineRepositoryFacade
	barRepo         portsrepo.BarRepositoryFacade
	defaultPageSize int
	maxPageSize     int
}

// NewCollectionService creates the collection recording service.
func NewCollectionService(collectionRepo portsrepo.CollectionRepositoryFacade, machineRepo portsrepo.MachineRepositoryFacade, barRepo portsrepo.BarRepositoryFacade, defaultPageSize, maxPageSize int) portssvc.CollectionSvcFacade {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &collectionService{
		collectionRepo:  collectionRepo,
		machineRepo:     machineRepo,
		barRepo:         barRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

func (s *collectionService) CreateCollection(ctx context.Context, req dto.CreateCollectionRequest, operatorID string) (*domain.CollectionRecord, *domain.MachineCounter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	machine, err := s.machineRepo.FindMachineByID(ctx, req.MachineID)
	if err != nil {
		return nil, nil, err
	}
	if machine.OperatorID != operatorID {
		return nil, nil, apperrors.ErrNotFound
	}

	bar, err := s.barRepo.FindBarByID(ctx, machine.BarID)
	if err != nil {
		return nil, nil, err
	}

	amounts, err := splitting.FinalizeForPersistence(splitting.CollectionAmounts{
		Total: req.TotalCollection,
		Extra: req.ExtraAmount,
	})
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	record := domain.CollectionRecord{
		CollectionID:    uuid.NewString(),
		OperatorID:      operatorID,
		MachineID:       machine.MachineID,
		BarID:           bar.BarID,
		BarName:         bar.Name,
		TotalCollection: amounts.Total,
		BarAmount:       amounts.Bar,
		BusinessAmount:  amounts.Business,
		ExtraAmount:     amounts.Extra,
		Comments:        req.Comments,
		Status:          domain.CollectionRecorded,
		CreatedAt:       now,
		CreatedBy:       operatorID,
	}

	newCounter, err := s.collectionRepo.SaveCollection(ctx, record)
	if err != nil {
		logger.Error("Failed to save collection", slog.String("error", err.Error()), slog.Int64("machine_id", machine.MachineID))
		return nil, nil, err
	}

	counter := &domain.MachineCounter{
		OldCounter: machine.Counter,
		NewCounter: newCounter,
	}

	logger.Info("Collection recorded",
		slog.String("collection_id", record.CollectionID),
		slog.Int64("machine_id", machine.MachineID),
		slog.String("total", record.TotalCollection.String()))
	return &record, counter, nil
}

func (s *collectionService) GetCollectionByID(ctx context.Context, collectionID string, operatorID string) (*domain.CollectionRecord, error) {
	record, err := s.collectionRepo.FindCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if record.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return record, nil
}

func (s *collectionService) ListCollections(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.CollectionRecord, *string, error) {
	return s.listPage(ctx, operatorID, limit, nextToken, func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
		return s.collectionRepo.ListCollections(ctx, operatorID, limit, cursor)
	})
}

func (s *collectionService) ListCollectionsByMachine(ctx context.Context, operatorID string, machineID int64, limit int, nextToken *string) ([]domain.CollectionRecord, *string, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		return nil, nil, err
	}
	if machine.OperatorID != operatorID {
		return nil, nil, apperrors.ErrNotFound
	}

	return s.listPage(ctx, operatorID, limit, nextToken, func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
		return s.collectionRepo.ListCollectionsByMachine(ctx, operatorID, machineID, limit, cursor)
	})
}

// listPage fetches limit+1 rows to learn whether another page exists without a
// second query, then trims the sentinel row and mints the next token from the
// last row actually returned.
func (s *collectionService) listPage(ctx context.Context, operatorID string, limit int, nextToken *string, fetch PageFetchFunc) ([]domain.CollectionRecord, *string, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	var cursor *domain.CollectionCursor
	if nextToken != nil && *nextToken != "" {
		createdAt, collectionID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		cursor = &domain.CollectionCursor{CreatedAt: createdAt, CollectionID: collectionID}
	}

	records, err := fetch(ctx, limit+1, cursor)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.CollectionID)
		newToken = &token
	}
	return records, newToken, nil
}

func (s *collectionService) ValidateDraft(ctx context.Context, req dto.CreateCollectionRequest) (*dto.CollectionDraftResponse, error) {
	amounts, err := splitting.FinalizeForPersistence(splitting.CollectionAmounts{
		Total: req.TotalCollection,
		Extra: req.ExtraAmount,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CollectionDraftResponse{
		TotalCollection: amounts.Total,
		BarAmount:       amounts.Bar,
		BusinessAmount:  amounts.Business,
		ExtraAmount:     amounts.Extra,
	}, nil
}
