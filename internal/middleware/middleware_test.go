package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/logging"
	"github.com/umalmyha/crm/internal/model"
	svcMocks "github.com/umalmyha/crm/internal/service/mocks"
)

var testCookies = config.CookieCfg{AccessTokenName: "access-token", RefreshTokenName: "refresh-token"}

var testUser = &model.User{ID: "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792", Email: "test@email.com"}

func testJwt(t *testing.T) (*auth.JwtIssuer, *auth.JwtValidator) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate keys")

	method := jwt.GetSigningMethod(auth.AlgorithmEd25519)
	return auth.NewJwtIssuer("test", method, time.Minute, priv), auth.NewJwtValidator(method, pub)
}

func sessionEcho(validator *auth.JwtValidator, refresher SessionRefresher) *echo.Echo {
	e := echo.New()
	e.GET("/dashboard", func(c echo.Context) error {
		session, ok := SessionFrom(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no session")
		}
		return c.String(http.StatusOK, session.UserID)
	}, RequireSession(validator, refresher, testCookies))
	return e
}

func TestRequireSessionValidToken(t *testing.T) {
	issuer, validator := testJwt(t)
	refresher := svcMocks.NewAuthService(t)

	token, err := issuer.Sign(testUser, time.Now().UTC())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookies.AccessTokenName, Value: token.Signed})
	rec := httptest.NewRecorder()

	sessionEcho(validator, refresher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "valid session must pass")
	require.Equal(t, testUser.ID, rec.Body.String(), "session must carry user id")
}

func TestRequireSessionMissing(t *testing.T) {
	_, validator := testJwt(t)
	refresher := svcMocks.NewAuthService(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	sessionEcho(validator, refresher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, "visitor must be redirected")
	require.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestRequireSessionRefreshed(t *testing.T) {
	issuer, validator := testJwt(t)
	refresher := svcMocks.NewAuthService(t)

	expired, err := issuer.Sign(testUser, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	fresh, err := issuer.Sign(testUser, time.Now().UTC())
	require.NoError(t, err)

	rfrToken := &model.RefreshToken{ID: "a4f0f1c9-1d59-4c3b-9bde-55c1a2f8ae0e", UserID: testUser.ID, ExpiresIn: 3600, CreatedAt: time.Now().UTC()}
	refresher.On("Refresh", mock.Anything, "old-token", "test-agent", mock.AnythingOfType("time.Time")).Return(fresh, rfrToken, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.AddCookie(&http.Cookie{Name: testCookies.AccessTokenName, Value: expired.Signed})
	req.AddCookie(&http.Cookie{Name: testCookies.RefreshTokenName, Value: "old-token"})
	rec := httptest.NewRecorder()

	sessionEcho(validator, refresher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "rotated session must pass")

	cookies := rec.Result().Cookies()
	names := make(map[string]string, len(cookies))
	for _, c := range cookies {
		names[c.Name] = c.Value
	}
	require.Equal(t, fresh.Signed, names[testCookies.AccessTokenName], "new access token must be stored")
	require.Equal(t, rfrToken.ID, names[testCookies.RefreshTokenName], "new refresh token must be stored")
}

func TestRequireSessionRefreshRejected(t *testing.T) {
	_, validator := testJwt(t)
	refresher := svcMocks.NewAuthService(t)

	refresher.On("Refresh", mock.Anything, "stolen", mock.Anything, mock.Anything).Return(nil, nil, errors.New("refresh token expired")).Once()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookies.RefreshTokenName, Value: "stolen"})
	rec := httptest.NewRecorder()

	sessionEcho(validator, refresher).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, "visitor must be redirected")
	require.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestAuthorize(t *testing.T) {
	issuer, validator := testJwt(t)

	e := echo.New()
	e.GET("/api/customers", func(c echo.Context) error {
		session, _ := SessionFrom(c)
		return c.String(http.StatusOK, session.Email)
	}, Authorize(validator))

	t.Log("request without bearer token is unauthorized")
	{
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	t.Log("request with valid bearer token passes")
	{
		token, err := issuer.Sign(testUser, time.Now().UTC())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token.Signed)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, testUser.Email, rec.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	e := echo.New()
	e.Use(Metrics(reg))
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/broken", func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "boom") })

	for _, path := range []string{"/healthz", "/healthz", "/broken"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err, "metrics must be gathered")
	require.Len(t, families, 3, "requests, errors and duration must be registered")

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, count, "one series per path and status")
}

func TestLoggingContext(t *testing.T) {
	logger, hook := test.NewNullLogger()

	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.Use(Logging(logger))
	e.GET("/customers", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Warn("customers not loaded")
		return c.NoContent(http.StatusOK)
	})

	t.Log("logger in request context carries request fields")
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var warn *logrus.Entry
		entries := hook.AllEntries()
		for i := range entries {
			if entries[i].Message == "customers not loaded" {
				warn = entries[i]
			}
		}
		require.NotNil(t, warn, "entry must be written through request logger")
		require.Equal(t, rec.Header().Get(echo.HeaderXRequestID), warn.Data["request_id"])
		require.Equal(t, "/customers", warn.Data["path"])
		require.Contains(t, warn.Data, "trace_id")
	}
}
