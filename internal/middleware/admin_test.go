package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmari/museum-tickets/internal/utils"
)

func adminRequest(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminAuthValidSession(t *testing.T) {
	token, _, err := utils.NewSessionToken("secret", "admin@museum.example", 30)
	require.NoError(t, err)

	c, rec := adminRequest(token)
	var gotEmail string
	h := AdminAuth("secret")(func(c echo.Context) error {
		gotEmail, _ = c.Get("admin_email").(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@museum.example", gotEmail)
}

func TestAdminAuthMissingCookie(t *testing.T) {
	c, rec := adminRequest("")
	h := AdminAuth("secret")(func(echo.Context) error {
		t.Fatal("gate must not pass without a session")
		return nil
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminAuthForgedToken(t *testing.T) {
	token, _, err := utils.NewSessionToken("other-secret", "admin@museum.example", 30)
	require.NoError(t, err)

	c, rec := adminRequest(token)
	h := AdminAuth("secret")(func(echo.Context) error {
		t.Fatal("gate must not accept a token signed with another secret")
		return nil
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}
