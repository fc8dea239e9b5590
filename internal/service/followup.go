package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
)

// FollowupService represents behavior of follow-up service
type FollowupService interface {
	FindByCustomer(ctx context.Context, userID string, customerID string) ([]*model.Followup, error)
	Create(ctx context.Context, userID string, f *model.Followup) (*model.Followup, error)
	Complete(ctx context.Context, userID string, id string) error
	FindOpen(ctx context.Context, userID string, on string) ([]*model.CustomerFollowup, error)
	CountOpen(ctx context.Context, userID string) (int, error)
}

type followupService struct {
	customerSvc CustomerService
	followupRps repository.FollowupRepository
}

// NewFollowupService builds new FollowupService
func NewFollowupService(customerSvc CustomerService, followupRps repository.FollowupRepository) FollowupService {
	return &followupService{customerSvc: customerSvc, followupRps: followupRps}
}

func (s *followupService) FindByCustomer(ctx context.Context, userID string, customerID string) ([]*model.Followup, error) {
	if err := ownedCustomer(ctx, s.customerSvc, userID, customerID); err != nil {
		return nil, err
	}
	return s.followupRps.FindByCustomerID(ctx, customerID)
}

func (s *followupService) Create(ctx context.Context, userID string, f *model.Followup) (*model.Followup, error) {
	if strings.TrimSpace(f.Action) == "" {
		return nil, apperrors.NewBusinessErr("action", "action must not be empty")
	}

	if err := validDate("followupDate", f.FollowupDate); err != nil {
		return nil, err
	}

	if err := ownedCustomer(ctx, s.customerSvc, userID, f.CustomerID); err != nil {
		return nil, err
	}

	f.ID = uuid.NewString()
	f.Completed = false
	f.CreatedAt = time.Now().UTC()

	if err := s.followupRps.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Complete marks follow-up as completed, completion is never reverted
func (s *followupService) Complete(ctx context.Context, userID string, id string) error {
	f, err := s.followupRps.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if f == nil {
		return apperrors.NewEntryNotFoundErr("follow-up", id)
	}

	if err := ownedCustomer(ctx, s.customerSvc, userID, f.CustomerID); err != nil {
		return apperrors.NewEntryNotFoundErr("follow-up", id)
	}

	if f.Completed {
		return nil
	}
	return s.followupRps.Complete(ctx, id)
}

func (s *followupService) FindOpen(ctx context.Context, userID string, on string) ([]*model.CustomerFollowup, error) {
	return s.followupRps.FindOpenByUserID(ctx, userID, on)
}

func (s *followupService) CountOpen(ctx context.Context, userID string) (int, error) {
	return s.followupRps.CountOpenByUserID(ctx, userID)
}
