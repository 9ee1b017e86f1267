package dto

import (
	"time"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LeaveTypesResponse wraps the active leave type catalog.
type LeaveTypesResponse struct {
	Types []LeaveTypeResponse `json:"types"`
}

// LeaveTypeResponse is one catalog entry.
type LeaveTypeResponse struct {
	TypeID             string          `json:"typeId"`
	TypeName           string          `json:"typeName"`
	Description        string          `json:"description,omitempty"`
	DefaultDaysPerYear decimal.Decimal `json:"defaultDaysPerYear"`
}

// ToLeaveTypesResponse converts domain leave types to the catalog DTO.
func ToLeaveTypesResponse(types []domain.LeaveType) LeaveTypesResponse {
	out := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		out[i] = LeaveTypeResponse{
			TypeID:             t.TypeID,
			TypeName:           t.TypeName,
			Description:        t.Description,
			DefaultDaysPerYear: t.DefaultDaysPerYear,
		}
	}
	return LeaveTypesResponse{Types: out}
}

// BalanceParams defines query parameters for the balance endpoint.
type BalanceParams struct {
	Year int `form:"year" binding:"omitempty,gte=2000,lte=2100"`
}

// LeaveBalanceResponse is one ledger row.
type LeaveBalanceResponse struct {
	TypeID    string          `json:"typeId"`
	TypeName  string          `json:"typeName"`
	Year      int             `json:"year"`
	Allocated decimal.Decimal `json:"totalAllocated"`
	Used      decimal.Decimal `json:"used"`
	Remaining decimal.Decimal `json:"remaining"`
}

// BalanceSummaryResponse is the elementwise total across types.
type BalanceSummaryResponse struct {
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	TotalUsed      decimal.Decimal `json:"totalUsed"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// BalancesResponse is the payload of GET /leave/balance.
type BalancesResponse struct {
	Balances []LeaveBalanceResponse `json:"balances"`
	Summary  BalanceSummaryResponse `json:"summary"`
}

// ToBalancesResponse converts ledger rows plus their summary.
func ToBalancesResponse(balances []domain.LeaveBalance, summary domain.BalanceSummary) BalancesResponse {
	rows := make([]LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		rows[i] = LeaveBalanceResponse{
			TypeID:    b.TypeID,
			TypeName:  b.TypeName,
			Year:      b.Year,
			Allocated: b.Allocated,
			Used:      b.Used,
			Remaining: b.Remaining,
		}
	}
	return BalancesResponse{
		Balances: rows,
		Summary: BalanceSummaryResponse{
			TotalAllocated: summary.TotalAllocated,
			TotalUsed:      summary.TotalUsed,
			TotalRemaining: summary.TotalRemaining,
		},
	}
}

// SubmitLeaveRequest is the payload of POST /leave/request.
type SubmitLeaveRequest struct {
	TypeID             string `json:"type_id" binding:"required"`
	StartDate          string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate            string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason             string `json:"reason" binding:"max=500"`
	ContactDuringLeave string `json:"contact_during_leave" binding:"max=100"`
}

// SubmitLeaveResponse confirms a submitted request.
type SubmitLeaveResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// LeaveHistoryParams defines query parameters for GET /leave/history.
type LeaveHistoryParams struct {
	Status string `form:"status" binding:"omitempty,oneof=all pending approved rejected cancelled"`
	Year   int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
	Cursor string `form:"cursor"`
}

// ToHistoryFilter converts validated query params into the typed domain filter.
func (p LeaveHistoryParams) ToHistoryFilter() domain.LeaveHistoryFilter {
	filter := domain.LeaveHistoryFilter{Limit: p.Limit}
	if p.Status != "" && p.Status != "all" {
		status := domain.RequestStatus(p.Status)
		filter.Status = &status
	}
	if p.Year != 0 {
		year := p.Year
		filter.Year = &year
	}
	if p.Cursor != "" {
		cursor := p.Cursor
		filter.Cursor = &cursor
	}
	return filter
}

// LeaveRequestResponse is one history entry joined with its type name.
type LeaveRequestResponse struct {
	RequestID          string          `json:"requestId"`
	TypeID             string          `json:"typeId"`
	TypeName           string          `json:"typeName"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	DurationDays       decimal.Decimal `json:"durationDays"`
	Reason             string          `json:"reason,omitempty"`
	ContactDuringLeave string          `json:"contactDuringLeave,omitempty"`
	Status             string          `json:"status"`
	SubmittedAt        string          `json:"submittedAt"`
	DecidedAt          *string         `json:"decidedAt,omitempty"`
	DecisionNote       string          `json:"decisionNote,omitempty"`
}

// LeaveHistoryResponse is the payload of GET /leave/history.
type LeaveHistoryResponse struct {
	History    []LeaveRequestResponse `json:"history"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

// ToLeaveRequestResponse converts one joined request view.
func ToLeaveRequestResponse(view domain.LeaveRequestView) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		RequestID:          view.RequestID,
		TypeID:             view.TypeID,
		TypeName:           view.TypeName,
		StartDate:          view.StartDate.Format(dateLayout),
		EndDate:            view.EndDate.Format(dateLayout),
		DurationDays:       view.DurationDays,
		Reason:             view.Reason,
		ContactDuringLeave: view.ContactDuringLeave,
		Status:             string(view.Status),
		SubmittedAt:        view.SubmittedAt.Format(time.RFC3339),
		DecisionNote:       view.DecisionNote,
	}
	if view.DecidedAt != nil {
		decided := view.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

// ToLeaveHistoryResponse converts a history page.
func ToLeaveHistoryResponse(views []domain.LeaveRequestView, nextCursor *string) LeaveHistoryResponse {
	history := make([]LeaveRequestResponse, len(views))
	for i, v := range views {
		history[i] = ToLeaveRequestResponse(v)
	}
	return LeaveHistoryResponse{History: history, NextCursor: nextCursor}
}

// DecideLeaveRequest is the payload for approving or rejecting a request.
type DecideLeaveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Note     string `json:"note" binding:"max=500"`
}

// DecideLeaveResponse reports the resulting status.
type DecideLeaveResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}
