package domain_test

import (
	"testing"
	"time"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.RequestStatus
		to   domain.RequestStatus
		want bool
	}{
		{name: "pending to approved", from: domain.StatusPending, to: domain.StatusApproved, want: true},
		{name: "pending to rejected", from: domain.StatusPending, to: domain.StatusRejected, want: true},
		{name: "pending to cancelled", from: domain.StatusPending, to: domain.StatusCancelled, want: true},
		{name: "pending to pending", from: domain.StatusPending, to: domain.StatusPending, want: false},
		{name: "approved is terminal", from: domain.StatusApproved, to: domain.StatusCancelled, want: false},
		{name: "rejected is terminal", from: domain.StatusRejected, to: domain.StatusApproved, want: false},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: domain.StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatus_ReleasesReservation(t *testing.T) {
	assert.False(t, domain.StatusPending.ReleasesReservation())
	assert.False(t, domain.StatusApproved.ReleasesReservation(), "approval keeps the reservation consumed")
	assert.True(t, domain.StatusRejected.ReleasesReservation())
	assert.True(t, domain.StatusCancelled.ReleasesReservation())
}

func TestLeaveDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int64
	}{
		{name: "single day", start: "2024-06-01", end: "2024-06-01", want: 1},
		{name: "three days inclusive", start: "2024-06-01", end: "2024-06-03", want: 3},
		{name: "across month boundary", start: "2024-06-28", end: "2024-07-02", want: 5},
		{name: "full year", start: "2024-01-01", end: "2024-12-31", want: 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			assert.NoError(t, err)
			end, err := time.Parse("2006-01-02", tt.end)
			assert.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(domain.LeaveDuration(start, end)))
		})
	}
}

func TestLeaveBalance_ReserveAndRelease(t *testing.T) {
	balance := domain.LeaveBalance{
		Allocated: decimal.NewFromInt(10),
		Used:      decimal.NewFromInt(2),
		Remaining: decimal.NewFromInt(8),
	}

	three := decimal.NewFromInt(3)
	assert.True(t, balance.CanReserve(three))
	balance.Reserve(three)
	assert.True(t, decimal.NewFromInt(5).Equal(balance.Used))
	assert.True(t, decimal.NewFromInt(5).Equal(balance.Remaining))

	// a 6-day reservation no longer fits and must leave the row untouched
	six := decimal.NewFromInt(6)
	assert.False(t, balance.CanReserve(six))
	assert.True(t, decimal.NewFromInt(5).Equal(balance.Used))
	assert.True(t, decimal.NewFromInt(5).Equal(balance.Remaining))

	// rejection or cancellation credits the reserved days back
	balance.Release(three)
	assert.True(t, decimal.NewFromInt(2).Equal(balance.Used))
	assert.True(t, decimal.NewFromInt(8).Equal(balance.Remaining))
	assert.True(t, balance.Remaining.Equal(balance.Allocated.Sub(balance.Used)))
}

func TestLeaveBalance_ReserveExactRemaining(t *testing.T) {
	balance := domain.LeaveBalance{
		Allocated: decimal.NewFromInt(5),
		Used:      decimal.Zero,
		Remaining: decimal.NewFromInt(5),
	}

	five := decimal.NewFromInt(5)
	assert.True(t, balance.CanReserve(five), "reserving exactly the remaining days is allowed")
	balance.Reserve(five)
	assert.True(t, balance.Remaining.IsZero())
	assert.False(t, balance.CanReserve(decimal.NewFromInt(1)))
}

func TestSummarizeBalances(t *testing.T) {
	balances := []domain.LeaveBalance{
		{Allocated: decimal.NewFromInt(10), Used: decimal.NewFromInt(2), Remaining: decimal.NewFromInt(8)},
		{Allocated: decimal.NewFromInt(5), Used: decimal.NewFromInt(5), Remaining: decimal.Zero},
		{Allocated: decimal.NewFromFloat(2.5), Used: decimal.Zero, Remaining: decimal.NewFromFloat(2.5)},
	}

	summary := domain.SummarizeBalances(balances)

	assert.True(t, decimal.NewFromFloat(17.5).Equal(summary.TotalAllocated))
	assert.True(t, decimal.NewFromInt(7).Equal(summary.TotalUsed))
	assert.True(t, decimal.NewFromFloat(10.5).Equal(summary.TotalRemaining))
}

func TestSummarizeBalances_Empty(t *testing.T) {
	summary := domain.SummarizeBalances(nil)
	assert.True(t, summary.TotalAllocated.IsZero())
	assert.True(t, summary.TotalUsed.IsZero())
	assert.True(t, summary.TotalRemaining.IsZero())
}
