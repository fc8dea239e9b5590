package pages

import (
	"context"
	"strings"

	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

const (
	msgNoCustomers        = "No customers added yet."
	msgNoMatches          = "No matches found."
	msgStatusUpdateFailed = "Failed to update status. Please try again."
)

// CustomersView is view model of customers list page
type CustomersView struct {
	Email       string
	Query       string
	Customers   []*model.Customer
	Statuses    []model.Status
	Empty       string
	Error       string
	ActionError string
}

// CustomersPage controls customers list
type CustomersPage struct {
	customerSvc service.CustomerService
}

// NewCustomersPage builds CustomersPage
func NewCustomersPage(customerSvc service.CustomerService) *CustomersPage {
	return &CustomersPage{customerSvc: customerSvc}
}

// Load lists customers of session user filtered by query, failed lookup is rendered as error view
func (p *CustomersPage) Load(ctx context.Context, session *auth.Session, query string) *CustomersView {
	view := &CustomersView{
		Email:     session.Email,
		Query:     query,
		Customers: make([]*model.Customer, 0),
		Statuses:  model.Statuses,
	}

	all, err := p.customerSvc.FindAll(ctx, session.UserID)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("failed to load customers")
		view.Error = errorMessage(err)
		return view
	}

	view.Customers = FilterCustomers(all, query)
	switch {
	case len(all) == 0:
		view.Empty = msgNoCustomers
	case len(view.Customers) == 0:
		view.Empty = msgNoMatches
	}
	return view
}

// UpdateStatus changes status of one customer, loaded row is patched only when update succeeded
func (p *CustomersPage) UpdateStatus(ctx context.Context, session *auth.Session, query string, id string, status model.Status) *CustomersView {
	view := p.Load(ctx, session, query)
	if view.Error != "" {
		return view
	}

	if err := p.customerSvc.UpdateStatus(ctx, session.UserID, id, status); err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to update status of customer %s", id)
		view.ActionError = msgStatusUpdateFailed
		return view
	}

	for _, c := range view.Customers {
		if c.ID == id {
			c.Status = status
		}
	}
	return view
}

// FilterCustomers keeps customers whose name or email contains query, case is ignored
func FilterCustomers(customers []*model.Customer, query string) []*model.Customer {
	q := strings.ToLower(query)
	if q == "" {
		return customers
	}

	filtered := make([]*model.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
