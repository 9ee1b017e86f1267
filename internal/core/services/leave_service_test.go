package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/core/services"
	"github.com/campuskit/university_portal_app/internal/dto"
)

// --- Mock LeaveRepository ---
type MockLeaveRepository struct {
	mock.Mock
}

// Ensure MockLeaveRepository implements portsrepo.LeaveRepositoryFacade
var _ portsrepo.LeaveRepositoryFacade = (*MockLeaveRepository)(nil)

func (m *MockLeaveRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveType), args.Error(1)
}

func (m *MockLeaveRepository) FindLeaveTypeByID(ctx context.Context, typeID string) (*domain.LeaveType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveType), args.Error(1)
}

func (m *MockLeaveRepository) FindBalances(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveRepository) SubmitRequest(ctx context.Context, request domain.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLeaveRepository) TransitionRequest(ctx context.Context, requestID string, next domain.RequestStatus, deciderID string, note string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, next, deciderID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.LeaveRequestView), nextToken, args.Error(2)
}

// --- Test Suite Setup ---
type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo *MockLeaveRepository
	service       portssvc.LeaveSvcFacade
	userID        string
	sickType      domain.LeaveType
	now           time.Time
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = new(MockLeaveRepository)
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewLeaveService(
		suite.mockLeaveRepo,
		services.WithClock(func() time.Time { return suite.now }),
	)

	suite.userID = uuid.NewString()
	suite.sickType = domain.LeaveType{
		TypeID:             uuid.NewString(),
		TypeName:           "Sick Leave",
		DefaultDaysPerYear: decimal.NewFromInt(10),
		IsActive:           true,
	}
}

// --- SubmitRequest ---

func (suite *LeaveServiceTestSuite) TestSubmitRequest_Success() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-20",
		EndDate:   "2026-03-22",
		Reason:    "flu",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, suite.sickType.TypeID).Return(&suite.sickType, nil).Once()
	suite.mockLeaveRepo.On("SubmitRequest", ctx, mock.MatchedBy(func(r domain.LeaveRequest) bool {
		return r.UserID == suite.userID &&
			r.Status == domain.StatusPending &&
			r.DurationDays.Equal(decimal.NewFromInt(3))
	})).Return(nil).Once()

	created, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.RequestID)
	suite.Equal(domain.StatusPending, created.Status)
	suite.True(created.DurationDays.Equal(decimal.NewFromInt(3)))
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_SingleDay() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-20",
		EndDate:   "2026-03-20",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, suite.sickType.TypeID).Return(&suite.sickType, nil).Once()
	suite.mockLeaveRepo.On("SubmitRequest", ctx, mock.MatchedBy(func(r domain.LeaveRequest) bool {
		return r.DurationDays.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	created, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(created.DurationDays.Equal(decimal.NewFromInt(1)))
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_EndBeforeStart() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-22",
		EndDate:   "2026-03-20",
	}

	_, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_BackdatedRejected() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-02",
	}

	_, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_BackdatedAllowedByConfig() {
	ctx := context.Background()
	service := services.NewLeaveService(
		suite.mockLeaveRepo,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithAllowBackdatedLeave(true),
	)
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-02",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, suite.sickType.TypeID).Return(&suite.sickType, nil).Once()
	suite.mockLeaveRepo.On("SubmitRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).Return(nil).Once()

	_, err := service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_UnknownType() {
	ctx := context.Background()
	unknownTypeID := uuid.NewString()
	req := dto.SubmitLeaveRequest{
		TypeID:    unknownTypeID,
		StartDate: "2026-03-20",
		EndDate:   "2026-03-22",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, unknownTypeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_InactiveType() {
	ctx := context.Background()
	inactive := suite.sickType
	inactive.IsActive = false
	req := dto.SubmitLeaveRequest{
		TypeID:    inactive.TypeID,
		StartDate: "2026-03-20",
		EndDate:   "2026-03-22",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, inactive.TypeID).Return(&inactive, nil).Once()

	_, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestSubmitRequest_InsufficientBalance() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{
		TypeID:    suite.sickType.TypeID,
		StartDate: "2026-03-20",
		EndDate:   "2026-03-25",
	}

	suite.mockLeaveRepo.On("FindLeaveTypeByID", ctx, suite.sickType.TypeID).Return(&suite.sickType, nil).Once()
	suite.mockLeaveRepo.On("SubmitRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).Return(apperrors.ErrInsufficientBalance).Once()

	_, err := suite.service.SubmitRequest(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- DecideRequest ---

func (suite *LeaveServiceTestSuite) TestDecideRequest_Approve() {
	ctx := context.Background()
	deciderID := uuid.NewString()
	requestID := uuid.NewString()
	pending := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusPending}
	approved := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusApproved}

	suite.mockLeaveRepo.On("FindRequestByID", ctx, requestID).Return(pending, nil).Once()
	suite.mockLeaveRepo.On("TransitionRequest", ctx, requestID, domain.StatusApproved, deciderID, "ok").Return(approved, nil).Once()

	decided, err := suite.service.DecideRequest(ctx, requestID, deciderID, domain.StatusApproved, "ok")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, decided.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestDecideRequest_OwnRequestForbidden() {
	ctx := context.Background()
	requestID := uuid.NewString()
	pending := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusPending}

	suite.mockLeaveRepo.On("FindRequestByID", ctx, requestID).Return(pending, nil).Once()

	_, err := suite.service.DecideRequest(ctx, requestID, suite.userID, domain.StatusApproved, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "TransitionRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestDecideRequest_InvalidDecision() {
	ctx := context.Background()

	_, err := suite.service.DecideRequest(ctx, uuid.NewString(), uuid.NewString(), domain.StatusCancelled, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "FindRequestByID", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestDecideRequest_AlreadyDecided() {
	ctx := context.Background()
	deciderID := uuid.NewString()
	requestID := uuid.NewString()
	pending := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusPending}

	suite.mockLeaveRepo.On("FindRequestByID", ctx, requestID).Return(pending, nil).Once()
	suite.mockLeaveRepo.On("TransitionRequest", ctx, requestID, domain.StatusRejected, deciderID, "").Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.DecideRequest(ctx, requestID, deciderID, domain.StatusRejected, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- CancelRequest ---

func (suite *LeaveServiceTestSuite) TestCancelRequest_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()
	pending := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusPending}
	cancelled := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusCancelled}

	suite.mockLeaveRepo.On("FindRequestByID", ctx, requestID).Return(pending, nil).Once()
	suite.mockLeaveRepo.On("TransitionRequest", ctx, requestID, domain.StatusCancelled, suite.userID, "").Return(cancelled, nil).Once()

	result, err := suite.service.CancelRequest(ctx, requestID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, result.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestCancelRequest_NotOwnerForbidden() {
	ctx := context.Background()
	requestID := uuid.NewString()
	pending := &domain.LeaveRequest{RequestID: requestID, UserID: uuid.NewString(), Status: domain.StatusPending}

	suite.mockLeaveRepo.On("FindRequestByID", ctx, requestID).Return(pending, nil).Once()

	_, err := suite.service.CancelRequest(ctx, requestID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "TransitionRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetBalanceSummary ---

func (suite *LeaveServiceTestSuite) TestGetBalanceSummary_Totals() {
	ctx := context.Background()
	balances := []domain.LeaveBalance{
		{TypeName: "Sick Leave", Allocated: decimal.NewFromInt(10), Used: decimal.NewFromInt(2), Remaining: decimal.NewFromInt(8)},
		{TypeName: "Vacation Leave", Allocated: decimal.NewFromInt(15), Used: decimal.NewFromInt(5), Remaining: decimal.NewFromInt(10)},
	}
	suite.mockLeaveRepo.On("FindBalances", ctx, suite.userID, 2026).Return(balances, nil).Once()

	rows, summary, err := suite.service.GetBalanceSummary(ctx, suite.userID, 2026)

	suite.Require().NoError(err)
	suite.Len(rows, 2)
	suite.True(summary.TotalAllocated.Equal(decimal.NewFromInt(25)))
	suite.True(summary.TotalUsed.Equal(decimal.NewFromInt(7)))
	suite.True(summary.TotalRemaining.Equal(decimal.NewFromInt(18)))
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestGetBalanceSummary_DefaultsToCurrentYear() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("FindBalances", ctx, suite.userID, 2026).Return([]domain.LeaveBalance{}, nil).Once()

	rows, summary, err := suite.service.GetBalanceSummary(ctx, suite.userID, 0)

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.True(summary.TotalAllocated.IsZero())
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestGetBalanceSummary_RepoError() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("FindBalances", ctx, suite.userID, 2026).Return(nil, assert.AnError).Once()

	_, _, err := suite.service.GetBalanceSummary(ctx, suite.userID, 2026)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

// --- GetHistory ---

func (suite *LeaveServiceTestSuite) TestGetHistory_PassesFilterThrough() {
	ctx := context.Background()
	status := domain.StatusApproved
	filter := domain.LeaveHistoryFilter{Status: &status, Limit: 10}
	views := []domain.LeaveRequestView{
		{LeaveRequest: domain.LeaveRequest{RequestID: uuid.NewString(), Status: domain.StatusApproved}, TypeName: "Sick Leave"},
	}
	suite.mockLeaveRepo.On("FindHistory", ctx, suite.userID, filter).Return(views, "next-token", nil).Once()

	result, nextCursor, err := suite.service.GetHistory(ctx, suite.userID, filter)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Require().NotNil(nextCursor)
	suite.Equal("next-token", *nextCursor)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
