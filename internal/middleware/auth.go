package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
)

const sessionKey = "session"

// Authorize verifies bearer access token and puts session into context, used by api routes
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get(echo.HeaderAuthorization)
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			session, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns session put into context by Authorize or RequireSession
func SessionFrom(c echo.Context) (*auth.Session, bool) {
	session, ok := c.Get(sessionKey).(*auth.Session)
	return session, ok && session != nil
}
