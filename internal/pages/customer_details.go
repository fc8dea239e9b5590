package pages

import (
	"context"
	"strings"

	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
	"golang.org/x/sync/errgroup"
)

const (
	msgCustomerNotFound       = "Customer not found"
	msgAddInteractionFailed   = "Could not add interaction. Please try again."
	msgAddFollowupFailed      = "Could not add follow-up."
	msgCompleteFollowupFailed = "Could not mark as completed."
)

// InteractionForm is submitted to log interaction
type InteractionForm struct {
	Type  string `form:"type"`
	Notes string `form:"notes"`
	Date  string `form:"date"`
}

// FollowupForm is submitted to schedule follow-up
type FollowupForm struct {
	Date   string `form:"followupDate"`
	Action string `form:"action"`
}

// CustomerDetailsView is view model of customer details page
type CustomerDetailsView struct {
	Email            string
	Customer         *model.Customer
	Interactions     []*model.Interaction
	Followups        []*model.Followup
	Statuses         []model.Status
	InteractionTypes []model.InteractionType
	InteractionForm  InteractionForm
	FollowupForm     FollowupForm
	NotFound         bool
	Error            string
	ActionError      string
}

// CustomerDetailsPage controls customer details with its interactions and follow-ups
type CustomerDetailsPage struct {
	customerSvc    service.CustomerService
	interactionSvc service.InteractionService
	followupSvc    service.FollowupService
	clock          Clock
}

// NewCustomerDetailsPage builds CustomerDetailsPage
func NewCustomerDetailsPage(
	customerSvc service.CustomerService,
	interactionSvc service.InteractionService,
	followupSvc service.FollowupService,
	clock Clock,
) *CustomerDetailsPage {
	return &CustomerDetailsPage{
		customerSvc:    customerSvc,
		interactionSvc: interactionSvc,
		followupSvc:    followupSvc,
		clock:          clock,
	}
}

// Load reads customer, its interactions and follow-ups concurrently. Only customer lookup
// failure breaks the page, failed lists are logged and rendered empty.
func (p *CustomerDetailsPage) Load(ctx context.Context, session *auth.Session, id string) *CustomerDetailsView {
	today := model.Today(p.clock())
	view := &CustomerDetailsView{
		Email:            session.Email,
		Statuses:         model.Statuses,
		InteractionTypes: model.InteractionTypes,
		InteractionForm:  p.emptyInteractionForm(today),
		FollowupForm:     FollowupForm{Date: today},
		Interactions:     make([]*model.Interaction, 0),
		Followups:        make([]*model.Followup, 0),
	}

	var (
		customer    *model.Customer
		customerErr error
	)

	var g errgroup.Group

	g.Go(func() error {
		customer, customerErr = p.customerSvc.FindByID(ctx, session.UserID, id)
		return nil
	})

	g.Go(func() error {
		interactions, err := p.interactionSvc.FindByCustomer(ctx, session.UserID, id)
		if err != nil {
			logging.FromContext(ctx).WithError(err).Warnf("failed to fetch interactions of customer %s", id)
			return nil
		}
		view.Interactions = interactions
		return nil
	})

	g.Go(func() error {
		followups, err := p.followupSvc.FindByCustomer(ctx, session.UserID, id)
		if err != nil {
			logging.FromContext(ctx).WithError(err).Warnf("failed to fetch follow-ups of customer %s", id)
			return nil
		}
		view.Followups = followups
		return nil
	})

	_ = g.Wait()

	switch {
	case customerErr != nil:
		view.Error = errorMessage(customerErr)
	case customer == nil:
		view.NotFound = true
		view.Error = msgCustomerNotFound
	default:
		view.Customer = customer
	}
	return view
}

// ChangeStatus updates customer status and patches loaded customer with requested value
func (p *CustomerDetailsPage) ChangeStatus(ctx context.Context, session *auth.Session, id string, status model.Status) *CustomerDetailsView {
	view := p.Load(ctx, session, id)
	if view.Customer == nil {
		return view
	}

	if err := p.customerSvc.UpdateStatus(ctx, session.UserID, id, status); err != nil {
		view.ActionError = errorMessage(err)
		return view
	}

	view.Customer.Status = status
	return view
}

// AddInteraction logs interaction and prepends inserted row, blank notes are ignored
func (p *CustomerDetailsPage) AddInteraction(ctx context.Context, session *auth.Session, id string, form InteractionForm) *CustomerDetailsView {
	view := p.Load(ctx, session, id)
	if view.Customer == nil {
		return view
	}

	view.InteractionForm = form

	notes := strings.TrimSpace(form.Notes)
	if notes == "" {
		return view
	}

	created, err := p.interactionSvc.Create(ctx, session.UserID, &model.Interaction{
		CustomerID: id,
		Type:       model.InteractionType(form.Type),
		Notes:      notes,
		Date:       form.Date,
	})
	if err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to add interaction to customer %s", id)
		view.ActionError = msgAddInteractionFailed
		return view
	}

	view.Interactions = append([]*model.Interaction{created}, view.Interactions...)
	view.InteractionForm = p.emptyInteractionForm(model.Today(p.clock()))
	return view
}

// AddFollowup schedules follow-up and appends inserted row, blank action is ignored
func (p *CustomerDetailsPage) AddFollowup(ctx context.Context, session *auth.Session, id string, form FollowupForm) *CustomerDetailsView {
	view := p.Load(ctx, session, id)
	if view.Customer == nil {
		return view
	}

	view.FollowupForm = form

	action := strings.TrimSpace(form.Action)
	if action == "" {
		return view
	}

	created, err := p.followupSvc.Create(ctx, session.UserID, &model.Followup{
		CustomerID:   id,
		FollowupDate: form.Date,
		Action:       action,
	})
	if err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to add follow-up to customer %s", id)
		view.ActionError = msgAddFollowupFailed
		return view
	}

	view.Followups = append(view.Followups, created)
	view.FollowupForm = FollowupForm{Date: model.Today(p.clock())}
	return view
}

// CompleteFollowup marks follow-up done and patches loaded row. Only follow-ups
// listed for the customer on the page can be completed.
func (p *CustomerDetailsPage) CompleteFollowup(ctx context.Context, session *auth.Session, id string, followupID string) *CustomerDetailsView {
	view := p.Load(ctx, session, id)
	if view.Customer == nil {
		return view
	}

	var followup *model.Followup
	for _, f := range view.Followups {
		if f.ID == followupID {
			followup = f
			break
		}
	}

	if followup == nil {
		logging.FromContext(ctx).Warnf("follow-up %s is not listed for customer %s", followupID, id)
		view.ActionError = msgCompleteFollowupFailed
		return view
	}

	if err := p.followupSvc.Complete(ctx, session.UserID, followupID); err != nil {
		logging.FromContext(ctx).WithError(err).Warnf("failed to complete follow-up %s", followupID)
		view.ActionError = msgCompleteFollowupFailed
		return view
	}

	followup.Completed = true
	return view
}

func (p *CustomerDetailsPage) emptyInteractionForm(today string) InteractionForm {
	return InteractionForm{Type: string(model.InteractionNote), Date: today}
}

// InteractionBadge maps interaction type to badge color
func InteractionBadge(t model.InteractionType) string {
	switch t {
	case model.InteractionCall:
		return "blue"
	case model.InteractionEmail:
		return "green"
	case model.InteractionMeeting:
		return "amber"
	default:
		return "gray"
	}
}
