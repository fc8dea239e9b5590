package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

func TestDashboardLoad(t *testing.T) {
	ctx := context.Background()
	dashboardSvc := svcMocks.NewDashboardService(t)
	p := NewDashboardPage(dashboardSvc, testClock)

	task := &model.CustomerFollowup{
		Followup:     model.Followup{ID: "1", FollowupDate: "2024-03-10", Action: "Call"},
		CustomerName: "John",
		Due:          model.DueToday,
	}

	dashboardSvc.On("Summary", ctx, testSession.UserID, "2024-03-10").Return(&model.DashboardSummary{
		Stats:    model.DashboardStats{TotalCustomers: 2, OpenFollowups: 1, TodayFollowupsCount: 1},
		Today:    []*model.CustomerFollowup{task},
		Upcoming: []*model.CustomerFollowup{task},
	}, nil).Once()

	view := p.Load(ctx, testSession)

	require.Empty(t, view.Error)
	require.Equal(t, "2024-03-10", view.Today, "today must be UTC date of the clock")
	require.Equal(t, 2, view.Stats.TotalCustomers)
	require.Len(t, view.TodayTasks, 1)
	require.Empty(t, view.TodayEmpty)
	require.Empty(t, view.UpcomingEmpty)
}

func TestDashboardLoadEmpty(t *testing.T) {
	ctx := context.Background()
	dashboardSvc := svcMocks.NewDashboardService(t)
	p := NewDashboardPage(dashboardSvc, testClock)

	dashboardSvc.On("Summary", ctx, testSession.UserID, "2024-03-10").Return(&model.DashboardSummary{}, nil).Once()

	view := p.Load(ctx, testSession)

	require.Equal(t, msgNoTodayTasks, view.TodayEmpty)
	require.Equal(t, msgNoOpenTasks, view.UpcomingEmpty)
}

func TestDashboardLoadFailed(t *testing.T) {
	ctx := context.Background()
	dashboardSvc := svcMocks.NewDashboardService(t)
	p := NewDashboardPage(dashboardSvc, testClock)

	dashboardSvc.On("Summary", ctx, testSession.UserID, "2024-03-10").Return(nil, errors.New("db is down")).Once()

	view := p.Load(ctx, testSession)

	require.Equal(t, "Something went wrong loading your dashboard. Please try again.", view.Error)
	require.Empty(t, view.TodayTasks)
}
