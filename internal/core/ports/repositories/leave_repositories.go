package repositories

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// LeaveCatalogReader defines read operations for the leave type catalog.
type LeaveCatalogReader interface {
	// ListLeaveTypes retrieves active leave types ordered by name.
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)

	// FindLeaveTypeByID retrieves a leave type regardless of its active flag.
	// Returns apperrors.ErrNotFound when the type does not exist.
	FindLeaveTypeByID(ctx context.Context, typeID string) (*domain.LeaveType, error)
}

// BalanceReader defines read operations for the balance ledger.
type BalanceReader interface {
	// FindBalances retrieves all ledger rows for a user/year joined with the
	// type name. Absent rows are simply not returned; callers treat absence
	// as zero allocation.
	FindBalances(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, error)
}

// LeaveRequestWriter defines the transactional write operations of the workflow.
type LeaveRequestWriter interface {
	// SubmitRequest atomically reserves request.DurationDays against the
	// (user, type, year-of-start-date) balance row and inserts the request in
	// a single database transaction. The balance row is locked for the
	// duration of the check-and-decrement, so a concurrent submission for the
	// same row serializes behind it.
	// Returns apperrors.ErrInsufficientBalance when the row is absent or
	// remaining < duration; the ledger is left untouched in that case.
	SubmitRequest(ctx context.Context, request domain.LeaveRequest) error

	// TransitionRequest moves a pending request into the given terminal
	// status, and when the status releases the reservation (rejected or
	// cancelled) returns the reserved days to the balance row in the same
	// transaction. The request row is locked first; a request already in a
	// terminal status yields apperrors.ErrConflict, which makes the release
	// side effect impossible to apply twice.
	TransitionRequest(ctx context.Context, requestID string, next domain.RequestStatus, deciderID string, note string) (*domain.LeaveRequest, error)
}

// LeaveRequestReader defines read operations for submitted requests.
type LeaveRequestReader interface {
	// FindRequestByID retrieves one request.
	FindRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error)

	// FindHistory retrieves requests for a user joined with type names,
	// filtered by the typed filter and ordered by submitted_at descending.
	// Returns the page and an opaque token for the next page (nil when done).
	FindHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error)
}

// LeaveRepositoryFacade combines all leave workflow repository interfaces
type LeaveRepositoryFacade interface {
	LeaveCatalogReader
	BalanceReader
	LeaveRequestWriter
	LeaveRequestReader
}
