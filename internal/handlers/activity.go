package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type newInteraction struct {
	CustomerID string                `param:"id" validate:"required,uuid"`
	Type       model.InteractionType `json:"type" validate:"required,oneof=Note Call Email Meeting"`
	Notes      string                `json:"notes" validate:"required"`
	Date       string                `json:"date" validate:"required,datetime=2006-01-02"`
}

type newFollowup struct {
	CustomerID   string `param:"id" validate:"required,uuid"`
	FollowupDate string `json:"followupDate" validate:"required,datetime=2006-01-02"`
	Action       string `json:"action" validate:"required"`
}

// ActivityHTTPHandler is http handler for customer interactions and follow-ups
type ActivityHTTPHandler struct {
	interactionSvc service.InteractionService
	followupSvc    service.FollowupService
}

// NewActivityHTTPHandler builds new ActivityHTTPHandler
func NewActivityHTTPHandler(interactionSvc service.InteractionService, followupSvc service.FollowupService) *ActivityHTTPHandler {
	return &ActivityHTTPHandler{interactionSvc: interactionSvc, followupSvc: followupSvc}
}

// GetInteractions gets customer interactions
// @Summary     Customer interactions
// @Description Returns interactions of customer, newest first
// @Tags        interactions
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {array}  model.Interaction
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id}/interactions [get]
func (h *ActivityHTTPHandler) GetInteractions(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	interactions, err := h.interactionSvc.FindByCustomer(c.Request().Context(), s.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interactions)
}

// PostInteraction logs interaction
// @Summary     New interaction
// @Description Logs interaction with customer
// @Tags        interactions
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		   path 	string 		   true "Customer guid" Format(uuid)
// @Param 		newInteraction body	    newInteraction true "Interaction data"
// @Success     201    		   {object} model.Interaction
// @Failure     400    		   {object} echo.HTTPError
// @Failure     404    		   {object} echo.HTTPError
// @Failure     500    		   {object} echo.HTTPError
// @Router      /api/customers/{id}/interactions [post]
func (h *ActivityHTTPHandler) PostInteraction(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	var ni newInteraction
	if err := c.Bind(&ni); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ni); err != nil {
		return err
	}

	interaction, err := h.interactionSvc.Create(c.Request().Context(), s.UserID, &model.Interaction{
		CustomerID: ni.CustomerID,
		Type:       ni.Type,
		Notes:      ni.Notes,
		Date:       ni.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, interaction)
}

// GetFollowups gets customer follow-ups
// @Summary     Customer follow-ups
// @Description Returns follow-ups of customer ordered by date
// @Tags        followups
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {array}  model.Followup
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id}/followups [get]
func (h *ActivityHTTPHandler) GetFollowups(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	followups, err := h.followupSvc.FindByCustomer(c.Request().Context(), s.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, followups)
}

// PostFollowup schedules follow-up
// @Summary     New follow-up
// @Description Schedules follow-up action for customer
// @Tags        followups
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		path 	 string 	 true "Customer guid" Format(uuid)
// @Param 		newFollowup body	 newFollowup true "Follow-up data"
// @Success     201    		{object} model.Followup
// @Failure     400    		{object} echo.HTTPError
// @Failure     404    		{object} echo.HTTPError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/customers/{id}/followups [post]
func (h *ActivityHTTPHandler) PostFollowup(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	var nf newFollowup
	if err := c.Bind(&nf); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nf); err != nil {
		return err
	}

	followup, err := h.followupSvc.Create(c.Request().Context(), s.UserID, &model.Followup{
		CustomerID:   nf.CustomerID,
		FollowupDate: nf.FollowupDate,
		Action:       nf.Action,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, followup)
}

// CompleteFollowup completes follow-up
// @Summary     Complete follow-up
// @Description Marks follow-up as completed, there is no way back
// @Tags        followups
// @Security	ApiKeyAuth
// @Param       id     path 	string true "Follow-up guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/followups/{id}/complete [patch]
func (h *ActivityHTTPHandler) CompleteFollowup(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.followupSvc.Complete(c.Request().Context(), s.UserID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
