package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	rpsMocks "github.com/umalmyha/crm/internal/repository/mocks"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

const (
	activityUserID     = "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792"
	activityCustomerID = "ecc770d9-4576-4f72-affa-8b1454246692"
)

type activityServicesTestSuite struct {
	suite.Suite
	ctx                context.Context
	customer           *model.Customer
	interactionSvc     InteractionService
	followupSvc        FollowupService
	customerSvcMock    *svcMocks.CustomerService
	interactionRpsMock *rpsMocks.InteractionRepository
	followupRpsMock    *rpsMocks.FollowupRepository
}

func (s *activityServicesTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.customer = &model.Customer{ID: activityCustomerID, UserID: activityUserID, Name: "John Walls", Status: model.StatusNew}
}

func (s *activityServicesTestSuite) SetupTest() {
	t := s.T()
	s.customerSvcMock = svcMocks.NewCustomerService(t)
	s.interactionRpsMock = rpsMocks.NewInteractionRepository(t)
	s.followupRpsMock = rpsMocks.NewFollowupRepository(t)
	s.interactionSvc = NewInteractionService(s.customerSvcMock, s.interactionRpsMock)
	s.followupSvc = NewFollowupService(s.customerSvcMock, s.followupRpsMock)
}

func (s *activityServicesTestSuite) TestCreateInteraction() {
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(s.customer, nil).Once()
	s.interactionRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Interaction")).Return(nil).Once()

	s.T().Log("interaction is created for owned customer and returned as inserted")
	{
		i, err := s.interactionSvc.Create(s.ctx, activityUserID, &model.Interaction{
			CustomerID: activityCustomerID,
			Type:       model.InteractionCall,
			Notes:      "Discussed pricing",
			Date:       "2024-03-10",
		})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(i.ID, "id must be assigned")
		s.Assert().Equal(model.InteractionCall, i.Type)
		s.Assert().Equal("2024-03-10", i.Date)
	}
}

func (s *activityServicesTestSuite) TestCreateInteractionInvalid() {
	s.T().Log("blank notes are rejected")
	{
		_, err := s.interactionSvc.Create(s.ctx, activityUserID, &model.Interaction{
			CustomerID: activityCustomerID, Type: model.InteractionNote, Notes: "   ", Date: "2024-03-10",
		})
		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr)
		s.Assert().Equal("notes", bizErr.Target())
	}

	s.T().Log("unknown type is rejected")
	{
		_, err := s.interactionSvc.Create(s.ctx, activityUserID, &model.Interaction{
			CustomerID: activityCustomerID, Type: "Fax", Notes: "sent", Date: "2024-03-10",
		})
		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr)
		s.Assert().Equal("type", bizErr.Target())
	}

	s.T().Log("malformed date is rejected")
	{
		_, err := s.interactionSvc.Create(s.ctx, activityUserID, &model.Interaction{
			CustomerID: activityCustomerID, Type: model.InteractionEmail, Notes: "sent", Date: "10/03/2024",
		})
		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr)
		s.Assert().Equal("date", bizErr.Target())
	}

	s.interactionRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *activityServicesTestSuite) TestInteractionsOfForeignCustomer() {
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(nil, nil).Once()

	s.T().Log("interactions of invisible customer are not listed")
	{
		_, err := s.interactionSvc.FindByCustomer(s.ctx, activityUserID, activityCustomerID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.interactionRpsMock.AssertNotCalled(s.T(), "FindByCustomerID", mock.Anything, mock.Anything)
	}
}

func (s *activityServicesTestSuite) TestCreateFollowup() {
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(s.customer, nil).Once()
	s.followupRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Followup")).Return(nil).Once()

	s.T().Log("follow-up is created open")
	{
		f, err := s.followupSvc.Create(s.ctx, activityUserID, &model.Followup{
			CustomerID:   activityCustomerID,
			FollowupDate: "2024-03-12",
			Action:       "Send proposal",
			Completed:    true,
		})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(f.ID, "id must be assigned")
		s.Assert().False(f.Completed, "new follow-up must be open")
	}
}

func (s *activityServicesTestSuite) TestCreateFollowupBlankAction() {
	s.T().Log("blank action is rejected")
	{
		_, err := s.followupSvc.Create(s.ctx, activityUserID, &model.Followup{CustomerID: activityCustomerID, FollowupDate: "2024-03-12"})
		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr)
		s.Assert().Equal("action", bizErr.Target())
	}
}

func (s *activityServicesTestSuite) TestCompleteFollowup() {
	f := &model.Followup{ID: "c7f0d1c1-8a43-4f56-a1f7-1c1a7f6a2b30", CustomerID: activityCustomerID, FollowupDate: "2024-03-12", Action: "Call"}

	s.followupRpsMock.On("FindByID", s.ctx, f.ID).Return(f, nil).Once()
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(s.customer, nil).Once()
	s.followupRpsMock.On("Complete", s.ctx, f.ID).Return(nil).Once()

	s.T().Log("open follow-up is completed")
	{
		err := s.followupSvc.Complete(s.ctx, activityUserID, f.ID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *activityServicesTestSuite) TestCompleteFollowupAlreadyCompleted() {
	f := &model.Followup{ID: "c7f0d1c1-8a43-4f56-a1f7-1c1a7f6a2b30", CustomerID: activityCustomerID, Completed: true}

	s.followupRpsMock.On("FindByID", s.ctx, f.ID).Return(f, nil).Once()
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(s.customer, nil).Once()

	s.T().Log("completed follow-up stays completed without write")
	{
		err := s.followupSvc.Complete(s.ctx, activityUserID, f.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.followupRpsMock.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything)
	}
}

func (s *activityServicesTestSuite) TestCompleteForeignFollowup() {
	f := &model.Followup{ID: "c7f0d1c1-8a43-4f56-a1f7-1c1a7f6a2b30", CustomerID: activityCustomerID}

	s.followupRpsMock.On("FindByID", s.ctx, f.ID).Return(f, nil).Once()
	s.customerSvcMock.On("FindByID", s.ctx, activityUserID, activityCustomerID).Return(nil, nil).Once()

	s.T().Log("follow-up of invisible customer can't be completed")
	{
		err := s.followupSvc.Complete(s.ctx, activityUserID, f.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
	}
}

func (s *activityServicesTestSuite) TestCompleteMissingFollowup() {
	s.followupRpsMock.On("FindByID", s.ctx, "missing").Return(nil, errors.New("db is down")).Once()

	s.T().Log("lookup failure is raised")
	{
		err := s.followupSvc.Complete(s.ctx, activityUserID, "missing")
		s.Assert().EqualError(err, "db is down")
	}
}

// start interaction and follow-up services test suite
func TestActivityServicesTestSuite(t *testing.T) {
	suite.Run(t, new(activityServicesTestSuite))
}
