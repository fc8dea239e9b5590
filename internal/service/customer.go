package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/crm/internal/cache"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
)

// CustomerService represents behavior of customer service, every call is scoped to the owning user
type CustomerService interface {
	FindAll(ctx context.Context, userID string) ([]*model.Customer, error)
	FindByID(ctx context.Context, userID string, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	UpdateStatus(ctx context.Context, userID string, id string, status model.Status) error
	Count(ctx context.Context, userID string) (int, error)
}

type customerService struct {
	customerRps   repository.CustomerRepository
	customerCache cache.CustomerCacheRepository
}

// NewCustomerService builds new CustomerService
func NewCustomerService(customerRps repository.CustomerRepository, customerCache cache.CustomerCacheRepository) CustomerService {
	return &customerService{customerRps: customerRps, customerCache: customerCache}
}

func (s *customerService) FindAll(ctx context.Context, userID string) ([]*model.Customer, error) {
	return s.customerRps.FindAllByUserID(ctx, userID)
}

func (s *customerService) FindByID(ctx context.Context, userID string, id string) (*model.Customer, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (s *customerService) find(ctx context.Context, id string) (*model.Customer, error) {
	cached, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to read customer %s from cache", id)
	}

	if cached != nil {
		return cached, nil
	}

	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, nil
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to cache customer %s", id)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if c.Status == "" {
		c.Status = model.StatusNew
	}

	if !c.Status.Valid() {
		return nil, apperrors.NewBusinessErr("status", fmt.Sprintf("unknown customer status %s", c.Status))
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) UpdateStatus(ctx context.Context, userID string, id string, status model.Status) error {
	if !status.Valid() {
		return apperrors.NewBusinessErr("status", fmt.Sprintf("unknown customer status %s", status))
	}

	c, err := s.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if c == nil {
		return apperrors.NewEntryNotFoundErr("customer", id)
	}

	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.customerRps.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// reads running concurrently with the update may have cached the previous row again
	return s.customerCache.DeleteByID(ctx, id)
}

func (s *customerService) Count(ctx context.Context, userID string) (int, error) {
	return s.customerRps.CountByUserID(ctx, userID)
}
