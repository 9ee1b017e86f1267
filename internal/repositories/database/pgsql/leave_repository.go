package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	"github.com/campuskit/university_portal_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultHistoryLimit = 50

type pgxLeaveRepository struct {
	pool *pgxpool.Pool
}

// newPgxLeaveRepository creates a new repository for the leave workflow:
// the type catalog, the balance ledger and the request store.
func newPgxLeaveRepository(pool *pgxpool.Pool) *pgxLeaveRepository {
	return &pgxLeaveRepository{pool: pool}
}

// Ensure pgxLeaveRepository implements the facade
var _ portsrepo.LeaveRepositoryFacade = (*pgxLeaveRepository)(nil)

func (r *pgxLeaveRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	query := `
        SELECT type_id, type_name, description, default_days_per_year, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM leave_types
        WHERE is_active = TRUE
        ORDER BY type_name;
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	types := []domain.LeaveType{}
	for rows.Next() {
		var t domain.LeaveType
		if err := rows.Scan(
			&t.TypeID,
			&t.TypeName,
			&t.Description,
			&t.DefaultDaysPerYear,
			&t.IsActive,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading leave type rows: %w", err)
	}
	return types, nil
}

func (r *pgxLeaveRepository) FindLeaveTypeByID(ctx context.Context, typeID string) (*domain.LeaveType, error) {
	query := `
        SELECT type_id, type_name, description, default_days_per_year, is_active,
               created_at, created_by, last_updated_at, last_updated_by
        FROM leave_types
        WHERE type_id = $1;
    `
	var t domain.LeaveType
	err := r.pool.QueryRow(ctx, query, typeID).Scan(
		&t.TypeID,
		&t.TypeName,
		&t.Description,
		&t.DefaultDaysPerYear,
		&t.IsActive,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type %s: %w", typeID, err)
	}
	return &t, nil
}

func (r *pgxLeaveRepository) FindBalances(ctx context.Context, userID string, year int) ([]domain.LeaveBalance, error) {
	query := `
        SELECT b.balance_id, b.user_id, b.type_id, t.type_name, b.year, b.allocated, b.used, b.remaining
        FROM leave_balances b
        JOIN leave_types t ON b.type_id = t.type_id
        WHERE b.user_id = $1 AND b.year = $2
        ORDER BY t.type_name;
    `
	rows, err := r.pool.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.LeaveBalance{}
	for rows.Next() {
		var b domain.LeaveBalance
		if err := rows.Scan(
			&b.BalanceID,
			&b.UserID,
			&b.TypeID,
			&b.TypeName,
			&b.Year,
			&b.Allocated,
			&b.Used,
			&b.Remaining,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading leave balance rows: %w", err)
	}
	return balances, nil
}

// SubmitRequest reserves the request duration and inserts the request row in a
// single database transaction.
//
// The balance row is read with FOR UPDATE so the check-and-decrement is
// serialized against concurrent submissions for the same (user, type, year):
// the second submission blocks until the first commits and then sees the
// decremented remaining value. A missing balance row means zero allocation
// and is reported as insufficient balance, not as a storage error.
func (r *pgxLeaveRepository) SubmitRequest(ctx context.Context, request domain.LeaveRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Defer rollback in case of error; no-op after a successful commit.
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	year := request.StartDate.Year()

	var balance domain.LeaveBalance
	err = tx.QueryRow(ctx, `
        SELECT allocated, used, remaining
        FROM leave_balances
        WHERE user_id = $1 AND type_id = $2 AND year = $3
        FOR UPDATE;
    `, request.UserID, request.TypeID, year).Scan(&balance.Allocated, &balance.Used, &balance.Remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to lock balance row for user %s: %w", request.UserID, err)
	}

	if !balance.CanReserve(request.DurationDays) {
		return apperrors.ErrInsufficientBalance
	}
	balance.Reserve(request.DurationDays)

	_, err = tx.Exec(ctx, `
        UPDATE leave_balances
        SET used = $4, remaining = $5
        WHERE user_id = $1 AND type_id = $2 AND year = $3;
    `, request.UserID, request.TypeID, year, balance.Used, balance.Remaining)
	if err != nil {
		return fmt.Errorf("failed to reserve %s days for user %s: %w", request.DurationDays, request.UserID, err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO leave_requests (request_id, user_id, type_id, start_date, end_date, duration_days,
            reason, contact_during_leave, status, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `,
		request.RequestID,
		request.UserID,
		request.TypeID,
		request.StartDate,
		request.EndDate,
		request.DurationDays,
		request.Reason,
		request.ContactDuringLeave,
		request.Status,
		request.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leave request %s: %w", request.RequestID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit leave request %s: %w", request.RequestID, err)
	}
	return nil
}

// TransitionRequest moves a pending request into a terminal status, releasing
// the reservation in the same transaction when the outcome requires it.
//
// The request row is locked first; the status check under that lock is what
// makes the release idempotent. A request already in a terminal status cannot
// transition again, so its reservation can never be released twice.
func (r *pgxLeaveRepository) TransitionRequest(ctx context.Context, requestID string, next domain.RequestStatus, deciderID string, note string) (*domain.LeaveRequest, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	request, err := scanRequest(tx.QueryRow(ctx, `
        SELECT `+requestColumns+`
        FROM leave_requests
        WHERE request_id = $1
        FOR UPDATE;
    `, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock leave request %s: %w", requestID, err)
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrConflict
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `
        UPDATE leave_requests
        SET status = $2, decided_at = $3, decided_by = $4, decision_note = $5
        WHERE request_id = $1;
    `, requestID, next, now, deciderID, note)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave request %s: %w", requestID, err)
	}

	if next.ReleasesReservation() {
		year := request.StartDate.Year()
		var balance domain.LeaveBalance
		err = tx.QueryRow(ctx, `
            SELECT allocated, used, remaining
            FROM leave_balances
            WHERE user_id = $1 AND type_id = $2 AND year = $3
            FOR UPDATE;
        `, request.UserID, request.TypeID, year).Scan(&balance.Allocated, &balance.Used, &balance.Remaining)
		if err != nil {
			return nil, fmt.Errorf("failed to lock balance row for request %s: %w", requestID, err)
		}
		balance.Release(request.DurationDays)

		_, err = tx.Exec(ctx, `
            UPDATE leave_balances
            SET used = $4, remaining = $5
            WHERE user_id = $1 AND type_id = $2 AND year = $3;
        `, request.UserID, request.TypeID, year, balance.Used, balance.Remaining)
		if err != nil {
			return nil, fmt.Errorf("failed to release %s days for request %s: %w", request.DurationDays, requestID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition of request %s: %w", requestID, err)
	}

	request.Status = next
	request.DecidedAt = &now
	request.DecidedBy = &deciderID
	request.DecisionNote = note
	return request, nil
}

const requestColumns = `request_id, user_id, type_id, start_date, end_date, duration_days,
	reason, contact_during_leave, status, submitted_at, decided_at, decided_by, decision_note`

func scanRequest(row pgx.Row) (*domain.LeaveRequest, error) {
	var req domain.LeaveRequest
	err := row.Scan(
		&req.RequestID,
		&req.UserID,
		&req.TypeID,
		&req.StartDate,
		&req.EndDate,
		&req.DurationDays,
		&req.Reason,
		&req.ContactDuringLeave,
		&req.Status,
		&req.SubmittedAt,
		&req.DecidedAt,
		&req.DecidedBy,
		&req.DecisionNote,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *pgxLeaveRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM leave_requests WHERE request_id = $1;`
	request, err := scanRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}
	return request, nil
}

// FindHistory builds the history query from the typed filter. Optional
// predicates are appended as parameterized clauses; filter values never end
// up in the SQL text itself.
func (r *pgxLeaveRepository) FindHistory(ctx context.Context, userID string, filter domain.LeaveHistoryFilter) ([]domain.LeaveRequestView, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `
        SELECT r.request_id, r.user_id, r.type_id, r.start_date, r.end_date, r.duration_days,
               r.reason, r.contact_during_leave, r.status, r.submitted_at, r.decided_at, r.decided_by, r.decision_note,
               t.type_name
        FROM leave_requests r
        JOIN leave_types t ON r.type_id = t.type_id
        WHERE r.user_id = $1`
	args := []interface{}{userID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM r.start_date) = $%d", len(args))
	}
	if filter.Cursor != nil {
		submittedAt, requestID, err := pagination.DecodeToken(*filter.Cursor)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid history cursor", apperrors.ErrValidation)
		}
		args = append(args, submittedAt, requestID)
		query += fmt.Sprintf(" AND (r.submitted_at, r.request_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY r.submitted_at DESC, r.request_id DESC LIMIT $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leave history for user %s: %w", userID, err)
	}
	defer rows.Close()

	views := []domain.LeaveRequestView{}
	for rows.Next() {
		var v domain.LeaveRequestView
		if err := rows.Scan(
			&v.RequestID,
			&v.UserID,
			&v.TypeID,
			&v.StartDate,
			&v.EndDate,
			&v.DurationDays,
			&v.Reason,
			&v.ContactDuringLeave,
			&v.Status,
			&v.SubmittedAt,
			&v.DecidedAt,
			&v.DecidedBy,
			&v.DecisionNote,
			&v.TypeName,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan leave history row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed reading leave history rows: %w", err)
	}

	var nextCursor *string
	if len(views) > limit {
		views = views[:limit]
		last := views[len(views)-1]
		token := pagination.EncodeToken(last.SubmittedAt, last.RequestID)
		nextCursor = &token
	}
	return views, nextCursor, nil
}
