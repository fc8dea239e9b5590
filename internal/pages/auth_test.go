package pages

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
	"github.com/umalmyha/crm/internal/validation"
)

var testTime = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func testClock() time.Time {
	return testTime
}

var testSession = &auth.Session{UserID: "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792", Email: "test@email.com"}

func testValidator(t *testing.T) *validation.Validator {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err, "validator must be built")
	return v
}

func TestSignupShortPasswordNeverCallsBackend(t *testing.T) {
	authSvc := svcMocks.NewAuthService(t)
	p := NewAuthPages(authSvc, testValidator(t), testClock)

	view := p.Signup(context.Background(), SignupForm{Email: "a@b.co", Password: "12345"})

	require.NotEmpty(t, view.Error, "short password must be reported")
	require.Empty(t, view.Success)
	require.Equal(t, "a@b.co", view.Email, "form must stay populated")
	authSvc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	p := NewAuthPages(authSvc, testValidator(t), testClock)

	authSvc.On("Signup", ctx, "new@mail.com", "secret1").Return(&model.User{ID: "1", Email: "new@mail.com"}, nil).Once()
	authSvc.On("Signup", ctx, "taken@mail.com", "secret1").Return(nil, echo.NewHTTPError(http.StatusBadRequest, "User already registered")).Once()

	t.Log("fields are trimmed, success clears form")
	{
		view := p.Signup(ctx, SignupForm{Email: "  new@mail.com ", Password: " secret1 "})
		require.Empty(t, view.Error)
		require.Equal(t, msgSignupSuccess, view.Success)
		require.Empty(t, view.Email, "form must be cleared")
	}

	t.Log("backend error is shown verbatim")
	{
		view := p.Signup(ctx, SignupForm{Email: "taken@mail.com", Password: "secret1"})
		require.Equal(t, "User already registered", view.Error)
		require.Equal(t, "taken@mail.com", view.Email)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	p := NewAuthPages(authSvc, testValidator(t), testClock)

	token := &auth.Jwt{Signed: "signed", ExpiresAt: testTime.Add(time.Minute).Unix()}
	rfrToken := &model.RefreshToken{ID: "a4f0f1c9-1d59-4c3b-9bde-55c1a2f8ae0e"}

	authSvc.On("Login", ctx, "test@email.com", "secret1", "agent", testTime).Return(token, rfrToken, nil).Once()
	authSvc.On("Login", ctx, "test@email.com", "wrong", "agent", testTime).
		Return(nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid login credentials")).Once()

	t.Log("valid credentials establish session")
	{
		res, view := p.Login(ctx, LoginForm{Email: " test@email.com", Password: "secret1"}, "agent")
		require.Nil(t, view)
		require.Equal(t, token, res.Token)
		require.Equal(t, rfrToken, res.RefreshToken)
	}

	t.Log("invalid credentials are reported")
	{
		res, view := p.Login(ctx, LoginForm{Email: "test@email.com", Password: "wrong"}, "agent")
		require.Nil(t, res)
		require.Equal(t, "Invalid login credentials", view.Error)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	authSvc := svcMocks.NewAuthService(t)
	p := NewAuthPages(authSvc, testValidator(t), testClock)

	authSvc.On("Logout", ctx, "token").Return(nil).Once()

	require.NoError(t, p.Logout(ctx, "token"))
	require.NoError(t, p.Logout(ctx, ""), "missing token means nothing to revoke")
}
