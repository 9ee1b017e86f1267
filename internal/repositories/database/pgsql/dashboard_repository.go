package pgsql

import (
	"context"
	"fmt"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxDashboardRepository struct {
	pool *pgxpool.Pool
}

// newPgxDashboardRepository creates a new repository for dashboard aggregates.
func newPgxDashboardRepository(pool *pgxpool.Pool) *pgxDashboardRepository {
	return &pgxDashboardRepository{pool: pool}
}

// Ensure pgxDashboardRepository implements the facade
var _ portsrepo.DashboardRepositoryFacade = (*pgxDashboardRepository)(nil)

func (r *pgxDashboardRepository) FindRecentRequests(ctx context.Context, userID string, limit int) ([]domain.LeaveRequestView, error) {
	query := `
        SELECT r.request_id, r.user_id, r.type_id, r.start_date, r.end_date, r.duration_days,
               r.reason, r.contact_during_leave, r.status, r.submitted_at, r.decided_at, r.decided_by, r.decision_note,
               t.type_name
        FROM leave_requests r
        JOIN leave_types t ON r.type_id = t.type_id
        WHERE r.user_id = $1
        ORDER BY r.submitted_at DESC, r.request_id DESC
        LIMIT $2;
    `
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent requests for user %s: %w", userID, err)
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
			return nil, fmt.Errorf("failed to scan recent request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading recent request rows: %w", err)
	}
	return views, nil
}

func (r *pgxDashboardRepository) FindNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	query := `
        SELECT notification_id, user_id, title, message, type, is_read, created_at, expires_at
        FROM notifications
        WHERE user_id = $1 AND (expires_at IS NULL OR expires_at > NOW())
        ORDER BY created_at DESC
        LIMIT $2;
    `
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.NotificationID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.CreatedAt,
			&n.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading notification rows: %w", err)
	}
	return notifications, nil
}

func (r *pgxDashboardRepository) FindUpcomingHolidays(ctx context.Context, limit int) ([]domain.Holiday, error) {
	query := `
        SELECT holiday_id, holiday_name, holiday_date, holiday_type
        FROM holidays
        WHERE holiday_date >= CURRENT_DATE
        ORDER BY holiday_date
        LIMIT $1;
    `
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming holidays: %w", err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.HolidayID, &h.HolidayName, &h.HolidayDate, &h.HolidayType); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading holiday rows: %w", err)
	}
	return holidays, nil
}

func (r *pgxDashboardRepository) FindStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users WHERE is_active = TRUE) AS total_users,
            (SELECT COUNT(*) FROM departments WHERE is_active = TRUE) AS total_departments,
            (SELECT COUNT(*) FROM campuses WHERE is_active = TRUE) AS total_campuses,
            (SELECT COUNT(*) FROM leave_requests WHERE status = 'pending') AS pending_leaves,
            (SELECT COALESCE(AVG(profile_completion_percentage), 0) FROM user_profiles) AS avg_profile_completion,
            (SELECT COUNT(*) FROM users WHERE is_verified = TRUE) AS verified_users;
    `
	var stats domain.Statistics
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalDepartments,
		&stats.TotalCampuses,
		&stats.PendingLeaves,
		&stats.AvgProfileCompletion,
		&stats.VerifiedUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query statistics: %w", err)
	}
	return &stats, nil
}
