package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/utils"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_session"

// AdminAuth returns Echo middleware gating the admin console. It verifies
// the signed session cookie and redirects to the login page when the
// cookie is missing or invalid. On success the admin email is stored in
// the context under "admin_email".
func AdminAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			email, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Set("admin_email", email)
			return next(c)
		}
	}
}
