package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type identifier struct {
	ID string `json:"id" validate:"required,uuid"`
}

type newCustomer struct {
	Name   string       `json:"name" validate:"required"`
	Email  string       `json:"email" validate:"required,email"`
	Phone  string       `json:"phone"`
	Status model.Status `json:"status" validate:"omitempty,oneof=New Contacted Interested Closed"`
}

type statusUpdate struct {
	ID     string       `param:"id" validate:"required,uuid"`
	Status model.Status `json:"status" validate:"required,oneof=New Contacted Interested Closed"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer of current user with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), s.UserID, id)
	if err != nil {
		return err
	}

	if customer == nil {
		return apperrors.NewEntryNotFoundErr("customer", id)
	}
	return c.JSON(http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers of current user, newest first
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {array}  model.Customer
// @Failure     401    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	customers, err := h.customerSvc.FindAll(c.Request().Context(), s.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer owned by current user
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newCustomer body	 newCustomer true "Data for new customer"
// @Success     201    		{object} model.Customer
// @Failure     400    		{object} echo.HTTPError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), &model.Customer{
		UserID: s.UserID,
		Name:   nc.Name,
		Email:  nc.Email,
		Phone:  nc.Phone,
		Status: nc.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// PatchStatus updates customer status
// @Summary     Update customer status
// @Description Moves customer to another pipeline stage
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Param       id     		 path 	  string 	   true "Customer guid" Format(uuid)
// @Param 		statusUpdate body	  statusUpdate true "New status"
// @Success     204    		 "Successful status code"
// @Failure     400    		 {object} echo.HTTPError
// @Failure     404    		 {object} echo.HTTPError
// @Failure     500    		 {object} echo.HTTPError
// @Router      /api/customers/{id}/status [patch]
func (h *CustomerHTTPHandler) PatchStatus(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	var su statusUpdate
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	if err := h.customerSvc.UpdateStatus(c.Request().Context(), s.UserID, su.ID, su.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
