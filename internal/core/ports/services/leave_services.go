package services

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	"github.com/campuskit/university_portal_app/internal/dto"
)

// LeaveCatalogSvc exposes the leave type catalog.
type LeaveCatalogSvc interface {
	// ListLeaveTypes retrieves active leave types.
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
}

// LeaveBalanceSvc exposes balance ledger reads.
type LeaveBalanceSvc interface {
	// GetBalanceSummary retrieves the ledger rows for a user/year together
	// with their elementwise totals. Pure aggregation, no side effects.
	GetBalanceSummary(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, domain.BalanceSummary, error)
}

// LeaveWorkflowSvc exposes the stateful workflow operations.
type LeaveWorkflowSvc interface {
	// SubmitRequest validates and atomically submits a leave request,
	// reserving its duration against the balance ledger. Returns the created
	// request with its generated ID and pending status.
	SubmitRequest(ctx context.Context, userID string, req dto.SubmitLeaveRequest) (*domain.LeaveRequest, error)

	// DecideRequest moves a pending request to approved or rejected on behalf
	// of deciderID. A rejection releases the reservation. The owner of a
	// request cannot decide it.
	DecideRequest(ctx context.Context, requestID, deciderID string, decision domain.RequestStatus, note string) (*domain.LeaveRequest, error)

	// CancelRequest cancels the caller's own pending request and releases the
	// reservation.
	CancelRequest(ctx context.Context, requestID, userID string) (*domain.LeaveRequest, error)

	// GetHistory retrieves the caller's requests newest first, with optional
	// status/year filters and cursor pagination.
	GetHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error)
}

// LeaveSvcFacade combines all leave workflow service interfaces
type LeaveSvcFacade interface {
	LeaveCatalogSvc
	LeaveBalanceSvc
	LeaveWorkflowSvc
}
