package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/handlers"
	"github.com/campuskit/university_portal_app/internal/middleware"
)

// --- Mock LeaveService ---
type MockLeaveService struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ portssvc.LeaveSvcFacade = (*MockLeaveService)(nil)

func (m *MockLeaveService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveType), args.Error(1)
}

func (m *MockLeaveService) GetBalanceSummary(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, domain.BalanceSummary, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, domain.BalanceSummary{}, args.Error(2)
	}
	return args.Get(0).([]domain.LeaveBalance), args.Get(1).(domain.BalanceSummary), args.Error(2)
}

func (m *MockLeaveService) SubmitRequest(ctx context.Context, userID string, req dto.SubmitLeaveRequest) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveService) DecideRequest(ctx context.Context, requestID, deciderID string, decision domain.RequestStatus, note string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, deciderID, decision, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveService) CancelRequest(ctx context.Context, requestID, userID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveService) GetHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextCursor *string
	if args.Get(1) != nil {
		cursorVal := args.Get(1).(string)
		nextCursor = &cursorVal
	}
	return args.Get(0).([]domain.LeaveRequestView), nextCursor, args.Error(2)
}

// --- Test Suite Setup ---
type LeaveHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockLeaveService *MockLeaveService
	jwtSecret        string
	userID           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LeaveHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "portal-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *LeaveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockLeaveService = new(MockLeaveService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterLeaveRoutes(v1, suite.mockLeaveService)
}

func (suite *LeaveHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LeaveHandlerTestSuite) TestSubmitRequest_Success() {
	body := dto.SubmitLeaveRequest{
		TypeID:    uuid.NewString(),
		StartDate: "2026-03-20",
		EndDate:   "2026-03-22",
		Reason:    "flu",
	}
	created := &domain.LeaveRequest{
		RequestID:    uuid.NewString(),
		UserID:       suite.userID,
		Status:       domain.StatusPending,
		DurationDays: decimal.NewFromInt(3),
	}

	suite.mockLeaveService.On("SubmitRequest", mock.Anything, suite.userID, body).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave/request", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SubmitLeaveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.RequestID, resp.RequestID)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestSubmitRequest_InsufficientBalance() {
	body := dto.SubmitLeaveRequest{
		TypeID:    uuid.NewString(),
		StartDate: "2026-03-20",
		EndDate:   "2026-03-25",
	}

	suite.mockLeaveService.On("SubmitRequest", mock.Anything, suite.userID, body).Return(nil, apperrors.ErrInsufficientBalance).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave/request", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Insufficient leave balance")
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestSubmitRequest_MalformedDateRejectedByBinding() {
	body := map[string]string{
		"type_id":    uuid.NewString(),
		"start_date": "20-03-2026",
		"end_date":   "2026-03-22",
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/leave/request", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestSubmitRequest_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/leave/request", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "SubmitRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestGetBalance_Success() {
	balances := []domain.LeaveBalance{
		{TypeID: uuid.NewString(), TypeName: "Sick Leave", Year: 2026, Allocated: decimal.NewFromInt(10), Used: decimal.NewFromInt(2), Remaining: decimal.NewFromInt(8)},
	}
	summary := domain.SummarizeBalances(balances)

	suite.mockLeaveService.On("GetBalanceSummary", mock.Anything, suite.userID, 2026).Return(balances, summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave/balance?year=2026", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Balances, 1)
	suite.True(resp.Summary.TotalRemaining.Equal(decimal.NewFromInt(8)))
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestGetHistory_FilterParsing() {
	approved := domain.StatusApproved
	suite.mockLeaveService.On("GetHistory", mock.Anything, suite.userID, mock.MatchedBy(func(f domain.LeaveHistoryFilter) bool {
		return f.Status != nil && *f.Status == approved &&
			f.Year != nil && *f.Year == 2026 &&
			f.Limit == 20
	})).Return([]domain.LeaveRequestView{}, nil, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave/history?status=approved&year=2026&limit=20", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestGetHistory_StatusAllMeansNoFilter() {
	suite.mockLeaveService.On("GetHistory", mock.Anything, suite.userID, mock.MatchedBy(func(f domain.LeaveHistoryFilter) bool {
		return f.Status == nil && f.Year == nil && f.Limit == 50
	})).Return([]domain.LeaveRequestView{}, nil, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave/history?status=all", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestGetHistory_UnknownStatusRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/leave/history?status=archived", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "GetHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestDecideRequest_Conflict() {
	requestID := uuid.NewString()
	body := dto.DecideLeaveRequest{Decision: "approved"}

	suite.mockLeaveService.On("DecideRequest", mock.Anything, requestID, suite.userID, domain.StatusApproved, "").Return(nil, apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/leave/requests/%s/decision", requestID), body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestDecideRequest_OwnRequestForbidden() {
	requestID := uuid.NewString()
	body := dto.DecideLeaveRequest{Decision: "rejected", Note: "nope"}

	suite.mockLeaveService.On("DecideRequest", mock.Anything, requestID, suite.userID, domain.StatusRejected, "nope").Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/leave/requests/%s/decision", requestID), body)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestCancelRequest_Success() {
	requestID := uuid.NewString()
	cancelled := &domain.LeaveRequest{RequestID: requestID, UserID: suite.userID, Status: domain.StatusCancelled}

	suite.mockLeaveService.On("CancelRequest", mock.Anything, requestID, suite.userID).Return(cancelled, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/leave/requests/%s/cancel", requestID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DecideLeaveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("cancelled", resp.Status)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLeaveHandler(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
