package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle state of a leave request.
// pending is the only non-terminal state; the workflow service always creates
// requests as pending and the decision/cancel operations move them out of it.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Only pending requests move, and only into a terminal status.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// ReleasesReservation reports whether entering this status must return the
// reserved days to the balance ledger. An approved outcome keeps the
// reservation consumed.
func (s RequestStatus) ReleasesReservation() bool {
	return s == StatusRejected || s == StatusCancelled
}

// LeaveType is static reference data describing a category of leave.
type LeaveType struct {
	TypeID             string          `json:"typeID"`
	TypeName           string          `json:"typeName"`
	Description        string          `json:"description,omitempty"`
	DefaultDaysPerYear decimal.Decimal `json:"defaultDaysPerYear"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}

// LeaveBalance is the per-user, per-type, per-year ledger row.
// Invariant: Remaining = Allocated - Used, with Used and Remaining never
// negative. Mutated only by the leave workflow (reserve/release).
type LeaveBalance struct {
	BalanceID string          `json:"balanceID"`
	UserID    string          `json:"userID"`
	TypeID    string          `json:"typeID"`
	TypeName  string          `json:"typeName"`
	Year      int             `json:"year"`
	Allocated decimal.Decimal `json:"allocated"`
	Used      decimal.Decimal `json:"used"`
	Remaining decimal.Decimal `json:"remaining"`
}

// CanReserve reports whether the row has enough remaining days left.
func (b LeaveBalance) CanReserve(days decimal.Decimal) bool {
	return !b.Remaining.LessThan(days)
}

// Reserve debits days from the row. Callers must have checked CanReserve
// first; Remaining = Allocated - Used holds afterwards.
func (b *LeaveBalance) Reserve(days decimal.Decimal) {
	b.Used = b.Used.Add(days)
	b.Remaining = b.Remaining.Sub(days)
}

// Release credits previously reserved days back to the row after a rejection
// or cancellation.
func (b *LeaveBalance) Release(days decimal.Decimal) {
	b.Used = b.Used.Sub(days)
	b.Remaining = b.Remaining.Add(days)
}

// BalanceSummary is the elementwise sum across all types for a user/year.
type BalanceSummary struct {
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	TotalUsed      decimal.Decimal `json:"totalUsed"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// SummarizeBalances computes the summary totals for a set of balance rows.
func SummarizeBalances(balances []LeaveBalance) BalanceSummary {
	summary := BalanceSummary{
		TotalAllocated: decimal.Zero,
		TotalUsed:      decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, b := range balances {
		summary.TotalAllocated = summary.TotalAllocated.Add(b.Allocated)
		summary.TotalUsed = summary.TotalUsed.Add(b.Used)
		summary.TotalRemaining = summary.TotalRemaining.Add(b.Remaining)
	}
	return summary
}

// LeaveRequest is a submitted request with its status lifecycle.
type LeaveRequest struct {
	RequestID          string          `json:"requestID"`
	UserID             string          `json:"userID"`
	TypeID             string          `json:"typeID"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	DurationDays       decimal.Decimal `json:"durationDays"`
	Reason             string          `json:"reason,omitempty"`
	ContactDuringLeave string          `json:"contactDuringLeave,omitempty"`
	Status             RequestStatus   `json:"status"`
	SubmittedAt        time.Time       `json:"submittedAt"`
	DecidedAt          *time.Time      `json:"decidedAt,omitempty"`
	DecidedBy          *string         `json:"decidedBy,omitempty"`
	DecisionNote       string          `json:"decisionNote,omitempty"`
}

// LeaveRequestView is a LeaveRequest joined with its type name.
type LeaveRequestView struct {
	LeaveRequest
	TypeName string `json:"typeName"`
}

// LeaveDuration returns the inclusive day count between start and end.
// Callers must have validated start <= end.
func LeaveDuration(start, end time.Time) decimal.Decimal {
	days := int64(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

// LeaveHistoryFilter is the validated, typed filter for history queries.
// Nil fields mean "no filter". The repository builds a parameterized query
// from it; filter values are never concatenated into SQL text.
type LeaveHistoryFilter struct {
	Status *RequestStatus // exact match on request status
	Year   *int           // year derived from the start date
	Limit  int            // page size; repository applies a default when <= 0
	Cursor *string        // opaque pagination token (submittedAt|requestID)
}
