package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/config"
	"github.com/velmari/museum-tickets/internal/middleware"
	"github.com/velmari/museum-tickets/internal/utils"
)

// AdminAuthHandler implements the login/logout gate for the console.
// There is a single configured administrator; the credential is a bcrypt
// hash from the environment, never a plaintext comparison.
type AdminAuthHandler struct {
	Cfg config.Config
}

// NewAdminAuthHandler constructs an AdminAuthHandler.
func NewAdminAuthHandler(cfg config.Config) *AdminAuthHandler {
	return &AdminAuthHandler{Cfg: cfg}
}

// LoginForm handles GET /admin/login.
func (h *AdminAuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", echo.Map{})
}

// Login handles POST /admin/login. On success it sets the signed session
// cookie and redirects to the console; on failure it re-renders the form
// with a generic error that does not reveal which field was wrong.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(h.Cfg.AdminEmail))) == 1
	passwordOK := utils.VerifyPassword(h.Cfg.AdminPasswordHash, password)
	if !emailOK || !passwordOK {
		return c.Render(http.StatusUnauthorized, "admin_login.html", echo.Map{"Error": "invalid credentials"})
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, email, h.Cfg.SessionTTLMin)
	if err != nil {
		c.Logger().Errorf("admin login: issue session: %v", err)
		return c.Render(http.StatusInternalServerError, "admin_login.html", echo.Map{"Error": "internal error"})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/admin")
}

// Logout handles GET /admin/logout. It expires the session cookie.
func (h *AdminAuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/admin/login")
}
