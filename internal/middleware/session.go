package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/model"
)

// LoginPath is where guarded pages send visitors without session
const LoginPath = "/login"

// SessionRefresher rotates refresh token and issues new access token
type SessionRefresher interface {
	Refresh(ctx context.Context, refreshTokenID string, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
}

// RequireSession guards web pages: valid access token cookie puts session into context,
// expired one is rotated with refresh token cookie, otherwise visitor is sent to login page
func RequireSession(validator *auth.JwtValidator, refresher SessionRefresher, cookies config.CookieCfg) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cookies.AccessTokenName); err == nil && cookie.Value != "" {
				if session, err := validator.Verify(cookie.Value); err == nil {
					c.Set(sessionKey, session)
					return next(c)
				}
			}

			rfrCookie, err := c.Cookie(cookies.RefreshTokenName)
			if err != nil || rfrCookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			token, rfrToken, err := refresher.Refresh(c.Request().Context(), rfrCookie.Value, Fingerprint(c), time.Now().UTC())
			if err != nil {
				LoggerFrom(c).WithError(err).Debug("session refresh rejected")
				ClearSessionCookies(c, cookies)
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			session, err := validator.Verify(token.Signed)
			if err != nil {
				return err
			}

			SetSessionCookies(c, cookies, token, rfrToken)
			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// Fingerprint identifies browser the refresh token was issued to
func Fingerprint(c echo.Context) string {
	return c.Request().UserAgent()
}

// SetSessionCookies stores access and refresh tokens in http-only cookies
func SetSessionCookies(c echo.Context, cookies config.CookieCfg, token *auth.Jwt, rfrToken *model.RefreshToken) {
	c.SetCookie(sessionCookie(cookies, cookies.AccessTokenName, token.Signed, time.Unix(token.ExpiresAt, 0)))

	rfrExpiresAt := rfrToken.CreatedAt.Add(time.Duration(rfrToken.ExpiresIn) * time.Second)
	c.SetCookie(sessionCookie(cookies, cookies.RefreshTokenName, rfrToken.ID, rfrExpiresAt))
}

// ClearSessionCookies expires both session cookies
func ClearSessionCookies(c echo.Context, cookies config.CookieCfg) {
	for _, name := range []string{cookies.AccessTokenName, cookies.RefreshTokenName} {
		cookie := sessionCookie(cookies, name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func sessionCookie(cookies config.CookieCfg, name string, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
