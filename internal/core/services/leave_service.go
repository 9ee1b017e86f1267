package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/middleware"
)

const dateLayout = "2006-01-02"

// leaveService orchestrates the leave workflow: request validation, balance
// reservation, status transitions and history queries. It is the only
// component that mutates the balance ledger, always through the repository's
// transactional operations.
type leaveService struct {
	leaveRepo           portsrepo.LeaveRepositoryFacade
	allowBackdatedLeave bool
	now                 func() time.Time
}

// LeaveServiceOption customizes a leaveService.
type LeaveServiceOption func(*leaveService)

// WithAllowBackdatedLeave permits requests whose start date is in the past.
func WithAllowBackdatedLeave(allow bool) LeaveServiceOption {
	return func(s *leaveService) {
		s.allowBackdatedLeave = allow
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) LeaveServiceOption {
	return func(s *leaveService) {
		s.now = now
	}
}

// NewLeaveService creates a new leave workflow service.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, opts ...LeaveServiceOption) portssvc.LeaveSvcFacade {
	s := &leaveService{
		leaveRepo: leaveRepo,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure leaveService implements the portssvc.LeaveSvcFacade interface
var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	return s.leaveRepo.ListLeaveTypes(ctx)
}

// GetBalanceSummary returns the ledger rows for the user/year and their
// elementwise totals. A year of zero means the current year.
func (s *leaveService) GetBalanceSummary(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, domain.BalanceSummary, error) {
	if year <= 0 {
		year = s.now().UTC().Year()
	}
	balances, err := s.leaveRepo.FindBalances(ctx, userID, year)
	if err != nil {
		return nil, domain.BalanceSummary{}, fmt.Errorf("failed to load balances for user %s: %w", userID, err)
	}
	return balances, domain.SummarizeBalances(balances), nil
}

// SubmitRequest validates the request and submits it atomically.
//
// Validation happens here; the reserve-then-insert atomicity lives in the
// repository so the balance check and the request insert share one database
// transaction. If the insert fails the reservation rolls back with it.
func (s *leaveService) SubmitRequest(ctx context.Context, userID string, req dto.SubmitLeaveRequest) (*domain.LeaveRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	if !s.allowBackdatedLeave {
		today := s.now().UTC().Truncate(24 * time.Hour)
		if startDate.Before(today) {
			return nil, fmt.Errorf("%w: leave cannot start in the past", apperrors.ErrValidation)
		}
	}

	leaveType, err := s.leaveRepo.FindLeaveTypeByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown leave type", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load leave type %s: %w", req.TypeID, err)
	}
	if !leaveType.IsActive {
		return nil, fmt.Errorf("%w: leave type %s is no longer offered", apperrors.ErrValidation, leaveType.TypeName)
	}

	request := domain.LeaveRequest{
		RequestID:          uuid.NewString(),
		UserID:             userID,
		TypeID:             req.TypeID,
		StartDate:          startDate,
		EndDate:            endDate,
		DurationDays:       domain.LeaveDuration(startDate, endDate),
		Reason:             req.Reason,
		ContactDuringLeave: req.ContactDuringLeave,
		Status:             domain.StatusPending,
		SubmittedAt:        s.now().UTC(),
	}

	if err := s.leaveRepo.SubmitRequest(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Info("Leave request rejected for insufficient balance",
				slog.String("type_id", req.TypeID),
				slog.String("duration_days", request.DurationDays.String()),
			)
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit leave request: %w", err)
	}

	logger.Info("Leave request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("type_id", request.TypeID),
		slog.String("duration_days", request.DurationDays.String()),
	)
	return &request, nil
}

// DecideRequest approves or rejects a pending request on behalf of deciderID.
// Owners cannot decide their own requests. A rejection releases the
// reservation inside the repository transaction; an approval leaves it
// consumed.
func (s *leaveService) DecideRequest(ctx context.Context, requestID, deciderID string, decision domain.RequestStatus, note string) (*domain.LeaveRequest, error) {
	if decision != domain.StatusApproved && decision != domain.StatusRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}

	request, err := s.leaveRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID == deciderID {
		return nil, fmt.Errorf("%w: cannot decide your own leave request", apperrors.ErrForbidden)
	}

	decided, err := s.leaveRepo.TransitionRequest(ctx, requestID, decision, deciderID, note)
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Leave request decided",
		slog.String("request_id", requestID),
		slog.String("status", string(decision)),
	)
	return decided, nil
}

// CancelRequest cancels the caller's own pending request, releasing the
// reservation.
func (s *leaveService) CancelRequest(ctx context.Context, requestID, userID string) (*domain.LeaveRequest, error) {
	request, err := s.leaveRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, fmt.Errorf("%w: not your leave request", apperrors.ErrForbidden)
	}

	cancelled, err := s.leaveRepo.TransitionRequest(ctx, requestID, domain.StatusCancelled, userID, "")
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Leave request cancelled",
		slog.String("request_id", requestID),
	)
	return cancelled, nil
}

func (s *leaveService) GetHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error) {
	return s.leaveRepo.FindHistory(ctx, userID, filter)
}
