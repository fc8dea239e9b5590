package service

import (
	"context"

	"github.com/umalmyha/crm/internal/model"
	"golang.org/x/sync/errgroup"
)

// DashboardService represents behavior of dashboard service
type DashboardService interface {
	Summary(ctx context.Context, userID string, today string) (*model.DashboardSummary, error)
}

type dashboardService struct {
	customerSvc CustomerService
	followupSvc FollowupService
}

// NewDashboardService builds new DashboardService
func NewDashboardService(customerSvc CustomerService, followupSvc FollowupService) DashboardService {
	return &dashboardService{customerSvc: customerSvc, followupSvc: followupSvc}
}

// Summary runs four independent reads concurrently, first failure cancels the rest
func (s *dashboardService) Summary(ctx context.Context, userID string, today string) (*model.DashboardSummary, error) {
	var (
		customersCount int
		openCount      int
		todayTasks     []*model.CustomerFollowup
		upcomingTasks  []*model.CustomerFollowup
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		customersCount, err = s.customerSvc.Count(gCtx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		openCount, err = s.followupSvc.CountOpen(gCtx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		todayTasks, err = s.followupSvc.FindOpen(gCtx, userID, today)
		return err
	})

	g.Go(func() error {
		var err error
		upcomingTasks, err = s.followupSvc.FindOpen(gCtx, userID, "")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	classify(todayTasks, today)
	classify(upcomingTasks, today)

	return &model.DashboardSummary{
		Stats: model.DashboardStats{
			TotalCustomers:      customersCount,
			OpenFollowups:       openCount,
			TodayFollowupsCount: len(todayTasks),
		},
		Today:    todayTasks,
		Upcoming: upcomingTasks,
	}, nil
}

func classify(tasks []*model.CustomerFollowup, today string) {
	for _, t := range tasks {
		t.Due = model.ClassifyDue(t.FollowupDate, today)
	}
}
