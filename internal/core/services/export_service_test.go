package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portsrepo "github.com/dartsops/darts_management_app/internal/core/ports/repositories"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/core/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/repositories/export"
	"github.com/dartsops/darts_management_app/pkg/retry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	collectionRepo *MockCollectionRepository
	machineRepo    *MockMachineRepository
	barRepo        *MockBarRepository
	operatorID     string
	from           time.Time
	to             time.Time
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.collectionRepo = new(MockCollectionRepository)
	s.machineRepo = new(MockMachineRepository)
	s.barRepo = new(MockBarRepository)
	s.operatorID = "op-1"
	s.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
}

func (s *ExportServiceTestSuite) newService(policy retry.Policy) portssvc.ExportSvcFacade {
	return services.NewExportService(
		s.collectionRepo,
		s.machineRepo,
		s.barRepo,
		map[string]portsrepo.ReportSink{"csv": export.NewCSVSink()},
		500,
		policy,
	)
}

func (s *ExportServiceTestSuite) collection(id string, machineID int64, day int, total int64) domain.CollectionRecord {
	t := decimal.NewFromInt(total)
	bar := t.Mul(decimal.NewFromInt(40)).Div(decimal.NewFromInt(100)).Round(2)
	return domain.CollectionRecord{
		CollectionID:    id,
		OperatorID:      s.operatorID,
		MachineID:       machineID,
		TotalCollection: t,
		BarAmount:       bar,
		BusinessAmount:  t.Sub(bar),
		CreatedAt:       time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC),
	}
}

func (s *ExportServiceTestSuite) TestExport_JoinsSortsAndRenders() {
	// Newest first, as the repository would return them; sorting into
	// machine/date order is the exporter's job.
	collections := []domain.CollectionRecord{
		s.collection("c3", 2, 20, 50),
		s.collection("c2", 1, 15, 100),
		s.collection("c1", 1, 5, 200),
	}
	s.collectionRepo.On("ListCollectionsInRange", mock.Anything, s.operatorID, s.from, s.to, 500, (*domain.CollectionCursor)(nil)).
		Return(collections, nil)
	s.machineRepo.On("FindAllMachinesByOperator", mock.Anything, s.operatorID).Return([]domain.Machine{
		{MachineID: 1, OperatorID: s.operatorID, BarID: 3, Name: "Lane 1"},
		{MachineID: 2, OperatorID: s.operatorID, BarID: 4, Name: "Lane 2"},
	}, nil)
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return([]domain.Bar{
		{BarID: 3, OperatorID: s.operatorID, Name: "The Dart Inn"},
		{BarID: 4, OperatorID: s.operatorID, Name: "Corner Pocket"},
	}, nil)

	file, err := s.newService(retry.Policy{Attempts: 1}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "csv",
	})
	s.Require().NoError(err)
	s.Equal("Collections_Export_2024-01-01_2024-02-01.csv", file.FileName)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	s.Require().Len(lines, 4)
	s.Equal(`"Bar","Machine ID","Machine","Business Amount","Bar Amount","Total","Date","Comments"`, lines[0])
	// Machine 1 first, its collections oldest first, then machine 2.
	s.Equal(`"The Dart Inn","1","Lane 1","120.00","80.00","200.00","05/01/2024",""`, lines[1])
	s.Equal(`"The Dart Inn","1","Lane 1","60.00","40.00","100.00","15/01/2024",""`, lines[2])
	s.Equal(`"Corner Pocket","2","Lane 2","30.00","20.00","50.00","20/01/2024",""`, lines[3])
}

func (s *ExportServiceTestSuite) TestExport_DropsRowsForUnknownMachines() {
	collections := []domain.CollectionRecord{
		s.collection("c1", 1, 5, 100),
		s.collection("c2", 99, 6, 100), // machine no longer in the directory
	}
	s.collectionRepo.On("ListCollectionsInRange", mock.Anything, s.operatorID, s.from, s.to, 500, (*domain.CollectionCursor)(nil)).
		Return(collections, nil)
	s.machineRepo.On("FindAllMachinesByOperator", mock.Anything, s.operatorID).Return([]domain.Machine{
		{MachineID: 1, OperatorID: s.operatorID, BarID: 3, Name: "Lane 1"},
	}, nil)
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return([]domain.Bar{
		{BarID: 3, OperatorID: s.operatorID, Name: "The Dart Inn"},
	}, nil)

	file, err := s.newService(retry.Policy{Attempts: 1}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "csv",
	})
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	s.Len(lines, 2, "header plus the single joinable row")
	s.Contains(lines[1], `"Lane 1"`)
}

func (s *ExportServiceTestSuite) TestExport_BlankBarNameWhenBarMissing() {
	collections := []domain.CollectionRecord{s.collection("c1", 1, 5, 100)}
	s.collectionRepo.On("ListCollectionsInRange", mock.Anything, s.operatorID, s.from, s.to, 500, (*domain.CollectionCursor)(nil)).
		Return(collections, nil)
	s.machineRepo.On("FindAllMachinesByOperator", mock.Anything, s.operatorID).Return([]domain.Machine{
		{MachineID: 1, OperatorID: s.operatorID, BarID: 42, Name: "Lane 1"},
	}, nil)
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return([]domain.Bar{}, nil)

	file, err := s.newService(retry.Policy{Attempts: 1}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "csv",
	})
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	s.Require().Len(lines, 2)
	s.True(strings.HasPrefix(lines[1], `"",`), "bar name renders blank, row survives")
}

func (s *ExportServiceTestSuite) TestExport_BarFetchFailureFailsExport() {
	boom := errors.New("directory unavailable")
	s.collectionRepo.On("ListCollectionsInRange", mock.Anything, s.operatorID, s.from, s.to, 500, (*domain.CollectionCursor)(nil)).
		Return([]domain.CollectionRecord{}, nil)
	s.machineRepo.On("FindAllMachinesByOperator", mock.Anything, s.operatorID).Return([]domain.Machine{}, nil)
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return(nil, boom)

	_, err := s.newService(retry.Policy{Attempts: 2, Backoff: time.Millisecond}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "csv",
	})
	s.Require().ErrorIs(err, boom)
	s.barRepo.AssertNumberOfCalls(s.T(), "FindAllBarsByOperator", 2)
}

func (s *ExportServiceTestSuite) TestExport_RetriesTransientDirectoryFailure() {
	boom := errors.New("connection reset")
	s.collectionRepo.On("ListCollectionsInRange", mock.Anything, s.operatorID, s.from, s.to, 500, (*domain.CollectionCursor)(nil)).
		Return([]domain.CollectionRecord{}, nil)
	s.machineRepo.On("FindAllMachinesByOperator", mock.Anything, s.operatorID).Return([]domain.Machine{}, nil)
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return(nil, boom).Twice()
	s.barRepo.On("FindAllBarsByOperator", mock.Anything, s.operatorID).Return([]domain.Bar{}, nil).Once()

	file, err := s.newService(retry.Policy{Attempts: 3, Backoff: time.Millisecond}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "csv",
	})
	s.Require().NoError(err)
	s.NotNil(file)
	s.barRepo.AssertNumberOfCalls(s.T(), "FindAllBarsByOperator", 3)
}

func (s *ExportServiceTestSuite) TestExport_RejectsBadRange() {
	svc := s.newService(retry.Policy{Attempts: 1})

	_, err := svc.Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-02-01",
		ToDate:   "2024-01-01",
		Format:   "csv",
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = svc.Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "not-a-date",
		Format:   "csv",
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *ExportServiceTestSuite) TestExport_RejectsUnknownFormat() {
	_, err := s.newService(retry.Policy{Attempts: 1}).Export(context.Background(), s.operatorID, dto.ExportParams{
		FromDate: "2024-01-01",
		ToDate:   "2024-02-01",
		Format:   "pdf",
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
