package pages

import (
	"context"
	"strings"

	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

const msgNoUser = "No user found"

// CustomerForm is submitted by add customer page
type CustomerForm struct {
	Name   string `form:"name" validate:"required"`
	Email  string `form:"email" validate:"required,email"`
	Phone  string `form:"phone"`
	Status string `form:"status" validate:"required,oneof=New Contacted Interested Closed"`
}

// AddCustomerView is view model of add customer page
type AddCustomerView struct {
	Email    string
	Form     CustomerForm
	Statuses []model.Status
	Error    string
}

// AddCustomerPage controls add customer form
type AddCustomerPage struct {
	authSvc     service.AuthService
	customerSvc service.CustomerService
	validator   Validator
}

// NewAddCustomerPage builds AddCustomerPage
func NewAddCustomerPage(authSvc service.AuthService, customerSvc service.CustomerService, validator Validator) *AddCustomerPage {
	return &AddCustomerPage{authSvc: authSvc, customerSvc: customerSvc, validator: validator}
}

// New returns empty form, status defaults to New
func (p *AddCustomerPage) New(session *auth.Session) *AddCustomerView {
	return &AddCustomerView{
		Email:    session.Email,
		Form:     CustomerForm{Status: string(model.StatusNew)},
		Statuses: model.Statuses,
	}
}

// Submit creates customer owned by current user, populated form is returned on failure
func (p *AddCustomerPage) Submit(ctx context.Context, session *auth.Session, form CustomerForm) (*model.Customer, *AddCustomerView) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Status = strings.TrimSpace(form.Status)

	view := p.New(session)
	view.Form = form

	if err := p.validator.Validate(&form); err != nil {
		view.Error = errorMessage(err)
		return nil, view
	}

	user, err := p.authSvc.User(ctx, session.UserID)
	if err != nil {
		view.Error = errorMessage(err)
		return nil, view
	}

	if user == nil {
		view.Error = msgNoUser
		return nil, view
	}

	c, err := p.customerSvc.Create(ctx, &model.Customer{
		UserID: user.ID,
		Name:   form.Name,
		Email:  form.Email,
		Phone:  form.Phone,
		Status: model.Status(form.Status),
	})
	if err != nil {
		view.Error = errorMessage(err)
		return nil, view
	}
	return c, nil
}
