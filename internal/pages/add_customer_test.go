package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

func TestAddCustomerNew(t *testing.T) {
	p := NewAddCustomerPage(svcMocks.NewAuthService(t), svcMocks.NewCustomerService(t), testValidator(t))

	view := p.New(testSession)
	require.Equal(t, "New", view.Form.Status, "status must default to New")
	require.Equal(t, model.Statuses, view.Statuses)
}

func TestAddCustomerSubmit(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewAddCustomerPage(authSvc, customerSvc, testValidator(t))

	user := &model.User{ID: testSession.UserID, Email: testSession.Email}
	authSvc.On("User", ctx, testSession.UserID).Return(user, nil).Once()
	customerSvc.On("Create", ctx, mock.MatchedBy(func(c *model.Customer) bool {
		return c.UserID == user.ID && c.Name == "Ann Lee" && c.Email == "ann@corp.io" && c.Phone == "" && c.Status == model.StatusInterested
	})).Return(&model.Customer{ID: "1", Name: "Ann Lee"}, nil).Once()

	c, view := p.Submit(ctx, testSession, CustomerForm{Name: " Ann Lee ", Email: "ann@corp.io ", Phone: "  ", Status: "Interested"})
	require.Nil(t, view, "successful submit returns no view")
	require.Equal(t, "1", c.ID)
}

func TestAddCustomerSubmitInvalid(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewAddCustomerPage(authSvc, customerSvc, testValidator(t))

	t.Log("missing name is rejected before backend")
	{
		c, view := p.Submit(ctx, testSession, CustomerForm{Email: "ann@corp.io", Status: "New"})
		require.Nil(t, c)
		require.Contains(t, view.Error, "name")
	}

	t.Log("unknown status is rejected")
	{
		c, view := p.Submit(ctx, testSession, CustomerForm{Name: "Ann", Email: "ann@corp.io", Status: "Lost"})
		require.Nil(t, c)
		require.NotEmpty(t, view.Error)
		require.Equal(t, "Lost", view.Form.Status, "form must stay populated")
	}

	authSvc.AssertNotCalled(t, "User", mock.Anything, mock.Anything)
	customerSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddCustomerSubmitNoUser(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewAddCustomerPage(authSvc, customerSvc, testValidator(t))

	authSvc.On("User", ctx, testSession.UserID).Return(nil, nil).Once()

	c, view := p.Submit(ctx, testSession, CustomerForm{Name: "Ann", Email: "ann@corp.io", Status: "New"})
	require.Nil(t, c)
	require.Equal(t, "No user found", view.Error)
	customerSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddCustomerSubmitFailed(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewAddCustomerPage(authSvc, customerSvc, testValidator(t))

	authSvc.On("User", ctx, testSession.UserID).Return(&model.User{ID: testSession.UserID}, nil).Once()
	customerSvc.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil, errors.New("insert failed")).Once()

	form := CustomerForm{Name: "Ann", Email: "ann@corp.io", Phone: "+1 555", Status: "Closed"}
	c, view := p.Submit(ctx, testSession, form)
	require.Nil(t, c)
	require.Equal(t, "insert failed", view.Error)
	require.Equal(t, form, view.Form, "form must stay populated")
}
