package pages

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

func testCustomers() []*model.Customer {
	return []*model.Customer{
		{ID: "1", UserID: testSession.UserID, Name: "Ann Lee", Email: "ann@corp.io", Status: model.StatusNew},
		{ID: "2", UserID: testSession.UserID, Name: "John Walls", Email: "jw@mail.com", Status: model.StatusContacted},
	}
}

func TestFilterCustomers(t *testing.T) {
	customers := testCustomers()

	require.Len(t, FilterCustomers(customers, ""), 2, "empty query keeps everything")
	require.Len(t, FilterCustomers(customers, "ANN"), 1, "name match ignores case")
	require.Len(t, FilterCustomers(customers, "mail.COM"), 1, "email match ignores case")
	require.Empty(t, FilterCustomers(customers, "zzz"), "nothing matches")
}

func TestCustomersLoadEmptyStates(t *testing.T) {
	ctx := context.Background()
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewCustomersPage(customerSvc)

	customerSvc.On("FindAll", ctx, testSession.UserID).Return([]*model.Customer{}, nil).Once()
	customerSvc.On("FindAll", ctx, testSession.UserID).Return(testCustomers()[:1], nil).Once()

	t.Log("no customers at all")
	{
		view := p.Load(ctx, testSession, "")
		require.Equal(t, "No customers added yet.", view.Empty)
	}

	t.Log("customer exists, query matches neither name nor email")
	{
		view := p.Load(ctx, testSession, "nobody")
		require.Equal(t, "No matches found.", view.Empty)
		require.Empty(t, view.Customers)
	}
}

func TestCustomersLoadFailed(t *testing.T) {
	ctx := context.Background()
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewCustomersPage(customerSvc)

	customerSvc.On("FindAll", ctx, testSession.UserID).Return(nil, errors.New("db is down")).Twice()

	t.Log("load failure is rendered as error view of customers page")
	{
		view := p.Load(ctx, testSession, "john")
		require.Equal(t, "db is down", view.Error)
		require.Equal(t, "john", view.Query, "query must stay in search box")
		require.Empty(t, view.Customers)
		require.Empty(t, view.Empty, "empty state is not shown over error")
	}

	t.Log("status is not updated when list is not loaded")
	{
		view := p.UpdateStatus(ctx, testSession, "", "1", model.StatusClosed)
		require.Equal(t, "db is down", view.Error)
		customerSvc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCustomersUpdateStatus(t *testing.T) {
	ctx := context.Background()
	customerSvc := svcMocks.NewCustomerService(t)
	p := NewCustomersPage(customerSvc)

	customerSvc.On("FindAll", ctx, testSession.UserID).Return(testCustomers(), nil).Twice()
	customerSvc.On("UpdateStatus", ctx, testSession.UserID, "2", model.StatusClosed).Return(nil).Once()
	customerSvc.On("UpdateStatus", ctx, testSession.UserID, "1", model.StatusClosed).
		Return(echo.NewHTTPError(http.StatusInternalServerError, "boom")).Once()

	t.Log("confirmed status patches loaded row")
	{
		view := p.UpdateStatus(ctx, testSession, "", "2", model.StatusClosed)
		require.Empty(t, view.ActionError)
		require.Equal(t, model.StatusClosed, view.Customers[1].Status)
		require.Equal(t, model.StatusNew, view.Customers[0].Status, "other rows are untouched")
	}

	t.Log("failed update leaves row and shows banner")
	{
		view := p.UpdateStatus(ctx, testSession, "", "1", model.StatusClosed)
		require.Equal(t, "Failed to update status. Please try again.", view.ActionError)
		require.Equal(t, model.StatusNew, view.Customers[0].Status)
	}

	customerSvc.AssertNumberOfCalls(t, "UpdateStatus", 2)
	customerSvc.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}
