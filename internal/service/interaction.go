package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
)

// InteractionService represents behavior of interaction service
type InteractionService interface {
	FindByCustomer(ctx context.Context, userID string, customerID string) ([]*model.Interaction, error)
	Create(ctx context.Context, userID string, i *model.Interaction) (*model.Interaction, error)
}

type interactionService struct {
	customerSvc    CustomerService
	interactionRps repository.InteractionRepository
}

// NewInteractionService builds new InteractionService
func NewInteractionService(customerSvc CustomerService, interactionRps repository.InteractionRepository) InteractionService {
	return &interactionService{customerSvc: customerSvc, interactionRps: interactionRps}
}

func (s *interactionService) FindByCustomer(ctx context.Context, userID string, customerID string) ([]*model.Interaction, error) {
	if err := ownedCustomer(ctx, s.customerSvc, userID, customerID); err != nil {
		return nil, err
	}
	return s.interactionRps.FindByCustomerID(ctx, customerID)
}

func (s *interactionService) Create(ctx context.Context, userID string, i *model.Interaction) (*model.Interaction, error) {
	if !i.Type.Valid() {
		return nil, apperrors.NewBusinessErr("type", fmt.Sprintf("unknown interaction type %s", i.Type))
	}

	if strings.TrimSpace(i.Notes) == "" {
		return nil, apperrors.NewBusinessErr("notes", "notes must not be empty")
	}

	if err := validDate("date", i.Date); err != nil {
		return nil, err
	}

	if err := ownedCustomer(ctx, s.customerSvc, userID, i.CustomerID); err != nil {
		return nil, err
	}

	i.ID = uuid.NewString()
	i.CreatedAt = time.Now().UTC()

	if err := s.interactionRps.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// ownedCustomer makes sure customer exists and belongs to user
func ownedCustomer(ctx context.Context, customerSvc CustomerService, userID string, customerID string) error {
	c, err := customerSvc.FindByID(ctx, userID, customerID)
	if err != nil {
		return err
	}

	if c == nil {
		return apperrors.NewEntryNotFoundErr("customer", customerID)
	}
	return nil
}

func validDate(target string, date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return apperrors.NewBusinessErr(target, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", target))
	}
	return nil
}
