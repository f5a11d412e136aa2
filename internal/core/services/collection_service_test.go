package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/core/domain"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/core/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CollectionRepository ---
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) SaveCollection(ctx context.Context, record domain.CollectionRecord) (decimal.Decimal, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCollectionRepository) FindCollectionByID(ctx context.Context, collectionID string) (*domain.CollectionRecord, error) {
	args := m.Called(ctx, collectionID)
	var record *domain.CollectionRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.CollectionRecord)
	}
	return record, args.Error(1)
}

func (m *MockCollectionRepository) ListCollections(ctx context.Context, operatorID string, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	args := m.Called(ctx, operatorID, limit, cursor)
	var records []domain.CollectionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.CollectionRecord)
	}
	return records, args.Error(1)
}

func (m *MockCollectionRepository) ListCollectionsByMachine(ctx context.Context, operatorID string, machineID int64, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	args := m.Called(ctx, operatorID, machineID, limit, cursor)
	var records []domain.CollectionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.CollectionRecord)
	}
	return records, args.Error(1)
}

func (m *MockCollectionRepository) ListCollectionsInRange(ctx context.Context, operatorID string, from, to time.Time, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
	args := m.Called(ctx, operatorID, from, to, limit, cursor)
	var records []domain.CollectionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.CollectionRecord)
	}
	return records, args.Error(1)
}

// --- Mock MachineRepository ---
type MockMachineRepository struct {
	mock.Mock
}

func (m *MockMachineRepository) SaveMachine(ctx context.Context, machine domain.Machine) (int64, error) {
	args := m.Called(ctx, machine)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMachineRepository) FindMachineByID(ctx context.Context, machineID int64) (*domain.Machine, error) {
	args := m.Called(ctx, machineID)
	var machine *domain.Machine
	if args.Get(0) != nil {
		machine = args.Get(0).(*domain.Machine)
	}
	return machine, args.Error(1)
}

func (m *MockMachineRepository) FindMachinesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Machine, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	var machines []domain.Machine
	if args.Get(0) != nil {
		machines = args.Get(0).([]domain.Machine)
	}
	return machines, args.Error(1)
}

func (m *MockMachineRepository) FindMachinesByBar(ctx context.Context, barID int64) ([]domain.Machine, error) {
	args := m.Called(ctx, barID)
	var machines []domain.Machine
	if args.Get(0) != nil {
		machines = args.Get(0).([]domain.Machine)
	}
	return machines, args.Error(1)
}

func (m *MockMachineRepository) FindAllMachinesByOperator(ctx context.Context, operatorID string) ([]domain.Machine, error) {
	args := m.Called(ctx, operatorID)
	var machines []domain.Machine
	if args.Get(0) != nil {
		machines = args.Get(0).([]domain.Machine)
	}
	return machines, args.Error(1)
}

func (m *MockMachineRepository) UpdateMachine(ctx context.Context, machine domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

// --- Mock BarRepository ---
type MockBarRepository struct {
	mock.Mock
}

func (m *MockBarRepository) SaveBar(ctx context.Context, bar domain.Bar) (int64, error) {
	args := m.Called(ctx, bar)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBarRepository) FindBarByID(ctx context.Context, barID int64) (*domain.Bar, error) {
	args := m.Called(ctx, barID)
	var bar *domain.Bar
	if args.Get(0) != nil {
		bar = args.Get(0).(*domain.Bar)
	}
	return bar, args.Error(1)
}

func (m *MockBarRepository) FindBarsByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Bar, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	var bars []domain.Bar
	if args.Get(0) != nil {
		bars = args.Get(0).([]domain.Bar)
	}
	return bars, args.Error(1)
}

func (m *MockBarRepository) FindAllBarsByOperator(ctx context.Context, operatorID string) ([]domain.Bar, error) {
	args := m.Called(ctx, operatorID)
	var bars []domain.Bar
	if args.Get(0) != nil {
		bars = args.Get(0).([]domain.Bar)
	}
	return bars, args.Error(1)
}

func (m *MockBarRepository) UpdateBar(ctx context.Context, bar domain.Bar) error {
	args := m.Called(ctx, bar)
	return args.Error(0)
}

func (m *MockBarRepository) DeactivateBar(ctx context.Context, barID int64, operatorID string, now time.Time) error {
	args := m.Called(ctx, barID, operatorID, now)
	return args.Error(0)
}

// --- Test Suite ---

type CollectionServiceTestSuite struct {
	suite.Suite
	collectionRepo *MockCollectionRepository
	machineRepo    *MockMachineRepository
	barRepo        *MockBarRepository
	service        portssvc.CollectionSvcFacade
	operatorID     string
	machine        *domain.Machine
	bar            *domain.Bar
}

func (s *CollectionServiceTestSuite) SetupTest() {
	s.collectionRepo = new(MockCollectionRepository)
	s.machineRepo = new(MockMachineRepository)
	s.barRepo = new(MockBarRepository)
	s.operatorID = "op-1"
	s.machine = &domain.Machine{
		MachineID:  7,
		OperatorID: s.operatorID,
		BarID:      3,
		Name:       "Lane 1",
		Counter:    decimal.NewFromInt(500),
		IsActive:   true,
	}
	s.bar = &domain.Bar{
		BarID:      3,
		OperatorID: s.operatorID,
		Name:       "The Dart Inn",
		IsActive:   true,
	}
	s.service = services.NewCollectionService(s.collectionRepo, s.machineRepo, s.barRepo, 5, 100)
}

func (s *CollectionServiceTestSuite) TestCreateCollection_Success() {
	ctx := context.Background()
	s.machineRepo.On("FindMachineByID", ctx, int64(7)).Return(s.machine, nil)
	s.barRepo.On("FindBarByID", ctx, int64(3)).Return(s.bar, nil)
	s.collectionRepo.On("SaveCollection", ctx, mock.MatchedBy(func(r domain.CollectionRecord) bool {
		return r.BarAmount.Equal(decimal.NewFromInt(30)) &&
			r.BusinessAmount.Equal(decimal.NewFromInt(70)) &&
			r.ExtraAmount.Equal(decimal.NewFromInt(10)) &&
			r.BarName == "The Dart Inn" &&
			r.Status == domain.CollectionRecorded
	})).Return(decimal.NewFromInt(600), nil)

	record, counter, err := s.service.CreateCollection(ctx, dto.CreateCollectionRequest{
		MachineID:       7,
		TotalCollection: decimal.NewFromInt(100),
		ExtraAmount:     decimal.NewFromInt(10),
		Comments:        "monthly pickup",
	}, s.operatorID)

	s.Require().NoError(err)
	s.NotEmpty(record.CollectionID)
	s.True(record.TotalCollection.Equal(decimal.NewFromInt(100)))
	s.True(counter.OldCounter.Equal(decimal.NewFromInt(500)))
	s.True(counter.NewCounter.Equal(decimal.NewFromInt(600)))
	s.collectionRepo.AssertExpectations(s.T())
}

func (s *CollectionServiceTestSuite) TestCreateCollection_ExtraExceedsBarShare() {
	ctx := context.Background()
	s.machineRepo.On("FindMachineByID", ctx, int64(7)).Return(s.machine, nil)
	s.barRepo.On("FindBarByID", ctx, int64(3)).Return(s.bar, nil)

	// Bar share of 100 is 40; an extra of 50 cannot be funded from it.
	_, _, err := s.service.CreateCollection(ctx, dto.CreateCollectionRequest{
		MachineID:       7,
		TotalCollection: decimal.NewFromInt(100),
		ExtraAmount:     decimal.NewFromInt(50),
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.collectionRepo.AssertNotCalled(s.T(), "SaveCollection", mock.Anything, mock.Anything)
}

func (s *CollectionServiceTestSuite) TestCreateCollection_NegativeTotal() {
	ctx := context.Background()
	s.machineRepo.On("FindMachineByID", ctx, int64(7)).Return(s.machine, nil)
	s.barRepo.On("FindBarByID", ctx, int64(3)).Return(s.bar, nil)

	_, _, err := s.service.CreateCollection(ctx, dto.CreateCollectionRequest{
		MachineID:       7,
		TotalCollection: decimal.NewFromInt(-5),
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.collectionRepo.AssertNotCalled(s.T(), "SaveCollection", mock.Anything, mock.Anything)
}

func (s *CollectionServiceTestSuite) TestCreateCollection_ForeignMachineHidden() {
	ctx := context.Background()
	foreign := *s.machine
	foreign.OperatorID = "someone-else"
	s.machineRepo.On("FindMachineByID", ctx, int64(7)).Return(&foreign, nil)

	_, _, err := s.service.CreateCollection(ctx, dto.CreateCollectionRequest{
		MachineID:       7,
		TotalCollection: decimal.NewFromInt(100),
	}, s.operatorID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.barRepo.AssertNotCalled(s.T(), "FindBarByID", mock.Anything, mock.Anything)
}

func (s *CollectionServiceTestSuite) TestListCollections_MintsTokenOnFullPage() {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Service asks for limit+1 to detect the next page.
	page := make([]domain.CollectionRecord, 3)
	for i := range page {
		page[i] = domain.CollectionRecord{
			CollectionID: string(rune('a' + i)),
			OperatorID:   s.operatorID,
			CreatedAt:    base.Add(-time.Duration(i) * time.Hour),
		}
	}
	s.collectionRepo.On("ListCollections", ctx, s.operatorID, 3, (*domain.CollectionCursor)(nil)).Return(page, nil)

	records, token, err := s.service.ListCollections(ctx, s.operatorID, 2, nil)
	s.Require().NoError(err)
	s.Len(records, 2)
	s.Require().NotNil(token)

	// The token resumes from the last record actually returned.
	next := page[2:]
	s.collectionRepo.On("ListCollections", ctx, s.operatorID, 3, mock.MatchedBy(func(c *domain.CollectionCursor) bool {
		return c != nil && c.CollectionID == records[1].CollectionID && c.CreatedAt.Equal(records[1].CreatedAt)
	})).Return(next, nil)

	records, token, err = s.service.ListCollections(ctx, s.operatorID, 2, token)
	s.Require().NoError(err)
	s.Len(records, 1)
	s.Nil(token, "short page means no further token")
}

func (s *CollectionServiceTestSuite) TestListCollections_ZeroLimitUsesConfiguredPageSize() {
	ctx := context.Background()

	// The suite constructs the service with a default page size of 5, so an
	// unspecified limit must reach the repository as 5+1.
	s.collectionRepo.On("ListCollections", ctx, s.operatorID, 6, (*domain.CollectionCursor)(nil)).
		Return([]domain.CollectionRecord{}, nil)

	records, token, err := s.service.ListCollections(ctx, s.operatorID, 0, nil)
	s.Require().NoError(err)
	s.Empty(records)
	s.Nil(token)
	s.collectionRepo.AssertExpectations(s.T())
}

func (s *CollectionServiceTestSuite) TestListCollections_RejectsGarbageToken() {
	bad := "not-a-token"
	_, _, err := s.service.ListCollections(context.Background(), s.operatorID, 10, &bad)
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *CollectionServiceTestSuite) TestValidateDraft_ShowsSplitWithoutPersisting() {
	draft, err := s.service.ValidateDraft(context.Background(), dto.CreateCollectionRequest{
		TotalCollection: decimal.NewFromInt(100),
		ExtraAmount:     decimal.NewFromInt(10),
	})
	s.Require().NoError(err)
	s.True(draft.BarAmount.Equal(decimal.NewFromInt(30)))
	s.True(draft.BusinessAmount.Equal(decimal.NewFromInt(70)))
	s.collectionRepo.AssertNotCalled(s.T(), "SaveCollection", mock.Anything, mock.Anything)
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
