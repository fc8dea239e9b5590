package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

const detailsCustomerID = "ecc770d9-4576-4f72-affa-8b1454246692"

type customerDetailsTestSuite struct {
	suite.Suite
	ctx                context.Context
	page               *CustomerDetailsPage
	customerSvcMock    *svcMocks.CustomerService
	interactionSvcMock *svcMocks.InteractionService
	followupSvcMock    *svcMocks.FollowupService
}

func (s *customerDetailsTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()
	s.customerSvcMock = svcMocks.NewCustomerService(t)
	s.interactionSvcMock = svcMocks.NewInteractionService(t)
	s.followupSvcMock = svcMocks.NewFollowupService(t)
	s.page = NewCustomerDetailsPage(s.customerSvcMock, s.interactionSvcMock, s.followupSvcMock, testClock)
}

func (s *customerDetailsTestSuite) expectLoad() {
	s.customerSvcMock.On("FindByID", mock.Anything, testSession.UserID, detailsCustomerID).Return(&model.Customer{
		ID:     detailsCustomerID,
		UserID: testSession.UserID,
		Name:   "John Walls",
		Status: model.StatusNew,
	}, nil).Once()

	s.interactionSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return([]*model.Interaction{
		{ID: "i1", CustomerID: detailsCustomerID, Type: model.InteractionCall, Notes: "first", Date: "2024-03-08"},
	}, nil).Once()

	s.followupSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return([]*model.Followup{
		{ID: "f1", CustomerID: detailsCustomerID, FollowupDate: "2024-03-11", Action: "Send offer"},
	}, nil).Once()
}

func (s *customerDetailsTestSuite) TestLoad() {
	s.expectLoad()

	view := s.page.Load(s.ctx, testSession, detailsCustomerID)

	s.Assert().Empty(view.Error)
	s.Assert().Equal("John Walls", view.Customer.Name)
	s.Assert().Len(view.Interactions, 1)
	s.Assert().Len(view.Followups, 1)
	s.Assert().Equal(InteractionForm{Type: "Note", Date: "2024-03-10"}, view.InteractionForm, "form defaults to Note today")
	s.Assert().Equal(FollowupForm{Date: "2024-03-10"}, view.FollowupForm)
}

func (s *customerDetailsTestSuite) TestLoadNotFound() {
	s.customerSvcMock.On("FindByID", mock.Anything, testSession.UserID, detailsCustomerID).Return(nil, nil).Once()
	s.interactionSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return(nil, errors.New("customer not found")).Once()
	s.followupSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return(nil, errors.New("customer not found")).Once()

	view := s.page.Load(s.ctx, testSession, detailsCustomerID)

	s.Assert().True(view.NotFound)
	s.Assert().Equal("Customer not found", view.Error)
	s.Assert().Nil(view.Customer)
}

func (s *customerDetailsTestSuite) TestLoadCustomerFailed() {
	s.customerSvcMock.On("FindByID", mock.Anything, testSession.UserID, detailsCustomerID).Return(nil, errors.New("db is down")).Once()
	s.interactionSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return([]*model.Interaction{}, nil).Once()
	s.followupSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return([]*model.Followup{}, nil).Once()

	view := s.page.Load(s.ctx, testSession, detailsCustomerID)

	s.Assert().False(view.NotFound)
	s.Assert().Equal("db is down", view.Error, "lookup failure is rendered as error view")
}

func (s *customerDetailsTestSuite) TestLoadListsFailedIndependently() {
	s.customerSvcMock.On("FindByID", mock.Anything, testSession.UserID, detailsCustomerID).Return(&model.Customer{ID: detailsCustomerID}, nil).Once()
	s.interactionSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return(nil, errors.New("db is down")).Once()
	s.followupSvcMock.On("FindByCustomer", mock.Anything, testSession.UserID, detailsCustomerID).Return([]*model.Followup{{ID: "f1"}}, nil).Once()

	view := s.page.Load(s.ctx, testSession, detailsCustomerID)

	s.Assert().Empty(view.Error, "failed list doesn't break the page")
	s.Assert().Empty(view.Interactions)
	s.Assert().Len(view.Followups, 1)
}

func (s *customerDetailsTestSuite) TestChangeStatus() {
	s.expectLoad()
	s.customerSvcMock.On("UpdateStatus", s.ctx, testSession.UserID, detailsCustomerID, model.StatusInterested).Return(nil).Once()

	view := s.page.ChangeStatus(s.ctx, testSession, detailsCustomerID, model.StatusInterested)

	s.Assert().Empty(view.ActionError)
	s.Assert().Equal(model.StatusInterested, view.Customer.Status)
}

func (s *customerDetailsTestSuite) TestChangeStatusFailed() {
	s.expectLoad()
	s.customerSvcMock.On("UpdateStatus", s.ctx, testSession.UserID, detailsCustomerID, model.StatusClosed).Return(errors.New("update failed")).Once()

	view := s.page.ChangeStatus(s.ctx, testSession, detailsCustomerID, model.StatusClosed)

	s.Assert().Equal("update failed", view.ActionError)
	s.Assert().Equal(model.StatusNew, view.Customer.Status, "status is not patched")
}

func (s *customerDetailsTestSuite) TestAddInteractionPrepends() {
	s.expectLoad()

	created := &model.Interaction{ID: "i2", CustomerID: detailsCustomerID, Type: model.InteractionMeeting, Notes: "met", Date: "2024-03-01"}
	s.interactionSvcMock.On("Create", s.ctx, testSession.UserID, mock.MatchedBy(func(i *model.Interaction) bool {
		return i.Notes == "met" && i.Type == model.InteractionMeeting && i.Date == "2024-03-01" && i.CustomerID == detailsCustomerID
	})).Return(created, nil).Once()

	view := s.page.AddInteraction(s.ctx, testSession, detailsCustomerID, InteractionForm{Type: "Meeting", Notes: "  met ", Date: "2024-03-01"})

	s.Assert().Empty(view.ActionError)
	s.Assert().Len(view.Interactions, 2)
	s.Assert().Equal("i2", view.Interactions[0].ID, "inserted row goes first regardless of its date")
	s.Assert().Equal(InteractionForm{Type: "Note", Date: "2024-03-10"}, view.InteractionForm, "form must be reset")
}

func (s *customerDetailsTestSuite) TestAddInteractionBlankNotes() {
	s.expectLoad()

	form := InteractionForm{Type: "Call", Notes: "   ", Date: "2024-03-10"}
	view := s.page.AddInteraction(s.ctx, testSession, detailsCustomerID, form)

	s.Assert().Empty(view.ActionError)
	s.Assert().Len(view.Interactions, 1)
	s.interactionSvcMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *customerDetailsTestSuite) TestAddInteractionFailed() {
	s.expectLoad()
	s.interactionSvcMock.On("Create", s.ctx, testSession.UserID, mock.AnythingOfType("*model.Interaction")).Return(nil, errors.New("insert failed")).Once()

	form := InteractionForm{Type: "Email", Notes: "sent offer", Date: "2024-03-09"}
	view := s.page.AddInteraction(s.ctx, testSession, detailsCustomerID, form)

	s.Assert().Equal("Could not add interaction. Please try again.", view.ActionError)
	s.Assert().Equal(form, view.InteractionForm, "form must stay populated")
	s.Assert().Len(view.Interactions, 1)
}

func (s *customerDetailsTestSuite) TestAddFollowupAppends() {
	s.expectLoad()

	created := &model.Followup{ID: "f2", CustomerID: detailsCustomerID, FollowupDate: "2024-03-05", Action: "Call"}
	s.followupSvcMock.On("Create", s.ctx, testSession.UserID, mock.MatchedBy(func(f *model.Followup) bool {
		return f.Action == "Call" && f.FollowupDate == "2024-03-05"
	})).Return(created, nil).Once()

	view := s.page.AddFollowup(s.ctx, testSession, detailsCustomerID, FollowupForm{Date: "2024-03-05", Action: " Call "})

	s.Assert().Empty(view.ActionError)
	s.Assert().Len(view.Followups, 2)
	s.Assert().Equal("f2", view.Followups[1].ID, "inserted row goes last regardless of its date")
	s.Assert().Equal(FollowupForm{Date: "2024-03-10"}, view.FollowupForm, "form must be reset")
}

func (s *customerDetailsTestSuite) TestAddFollowupFailed() {
	s.expectLoad()
	s.followupSvcMock.On("Create", s.ctx, testSession.UserID, mock.AnythingOfType("*model.Followup")).Return(nil, errors.New("insert failed")).Once()

	view := s.page.AddFollowup(s.ctx, testSession, detailsCustomerID, FollowupForm{Date: "2024-03-12", Action: "Call"})

	s.Assert().Equal("Could not add follow-up.", view.ActionError)
	s.Assert().Len(view.Followups, 1)
}

func (s *customerDetailsTestSuite) TestCompleteFollowup() {
	s.expectLoad()
	s.followupSvcMock.On("Complete", s.ctx, testSession.UserID, "f1").Return(nil).Once()

	view := s.page.CompleteFollowup(s.ctx, testSession, detailsCustomerID, "f1")

	s.Assert().Empty(view.ActionError)
	s.Assert().True(view.Followups[0].Completed)
}

func (s *customerDetailsTestSuite) TestCompleteFollowupFailed() {
	s.expectLoad()
	s.followupSvcMock.On("Complete", s.ctx, testSession.UserID, "f1").Return(errors.New("update failed")).Once()

	view := s.page.CompleteFollowup(s.ctx, testSession, detailsCustomerID, "f1")

	s.Assert().Equal("Could not mark as completed.", view.ActionError)
	s.Assert().False(view.Followups[0].Completed)
}

func (s *customerDetailsTestSuite) TestCompleteFollowupOfAnotherCustomer() {
	s.expectLoad()

	s.T().Log("follow-up which is not listed for the customer in the path is not completed")
	{
		view := s.page.CompleteFollowup(s.ctx, testSession, detailsCustomerID, "f-other-customer")

		s.Assert().Equal("Could not mark as completed.", view.ActionError)
		s.Assert().False(view.Followups[0].Completed)
		s.followupSvcMock.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *customerDetailsTestSuite) TestActionFailureLoggedWithRequestLogger() {
	s.expectLoad()
	s.interactionSvcMock.On("Create", mock.Anything, testSession.UserID, mock.AnythingOfType("*model.Interaction")).
		Return(nil, errors.New("insert failed")).Once()

	logger, hook := test.NewNullLogger()
	ctx := logging.WithLogger(s.ctx, logger.WithField("request_id", "5e0c7a51"))

	s.T().Log("page failures are logged through request-scoped logger")
	{
		view := s.page.AddInteraction(ctx, testSession, detailsCustomerID, InteractionForm{Type: "Call", Notes: "called", Date: "2024-03-10"})

		s.Assert().Equal("Could not add interaction. Please try again.", view.ActionError)
		s.Require().NotNil(hook.LastEntry(), "failure must be logged")
		s.Assert().Equal("5e0c7a51", hook.LastEntry().Data["request_id"])
		s.Assert().Equal(logrus.WarnLevel, hook.LastEntry().Level)
	}
}

func (s *customerDetailsTestSuite) TestInteractionBadge() {
	s.Assert().Equal("blue", InteractionBadge(model.InteractionCall))
	s.Assert().Equal("green", InteractionBadge(model.InteractionEmail))
	s.Assert().Equal("amber", InteractionBadge(model.InteractionMeeting))
	s.Assert().Equal("gray", InteractionBadge(model.InteractionNote))
	s.Assert().Equal("gray", InteractionBadge("Fax"))
}

// start customer details page test suite
func TestCustomerDetailsTestSuite(t *testing.T) {
	suite.Run(t, new(customerDetailsTestSuite))
}
