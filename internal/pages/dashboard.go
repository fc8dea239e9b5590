package pages

import (
	"context"

	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

const (
	msgDashboardFailed = "Something went wrong loading your dashboard. Please try again."
	msgNoTodayTasks    = "No follow-ups for today"
	msgNoOpenTasks     = "No open follow-ups"
)

// DashboardView is view model of dashboard page
type DashboardView struct {
	Email         string
	Today         string
	Stats         model.DashboardStats
	TodayTasks    []*model.CustomerFollowup
	UpcomingTasks []*model.CustomerFollowup
	TodayEmpty    string
	UpcomingEmpty string
	Error         string
}

// DashboardPage controls dashboard
type DashboardPage struct {
	dashboardSvc service.DashboardService
	clock        Clock
}

// NewDashboardPage builds DashboardPage
func NewDashboardPage(dashboardSvc service.DashboardService, clock Clock) *DashboardPage {
	return &DashboardPage{dashboardSvc: dashboardSvc, clock: clock}
}

// Load reads stats and tasks of session user, any failed read turns into single error message
func (p *DashboardPage) Load(ctx context.Context, session *auth.Session) *DashboardView {
	today := model.Today(p.clock())
	view := &DashboardView{Email: session.Email, Today: today}

	summary, err := p.dashboardSvc.Summary(ctx, session.UserID, today)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("failed to load dashboard")
		view.Error = msgDashboardFailed
		return view
	}

	view.Stats = summary.Stats
	view.TodayTasks = summary.Today
	view.UpcomingTasks = summary.Upcoming

	if len(view.TodayTasks) == 0 {
		view.TodayEmpty = msgNoTodayTasks
	}

	if len(view.UpcomingTasks) == 0 {
		view.UpcomingEmpty = msgNoOpenTasks
	}
	return view
}
