package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmari/museum-tickets/internal/config"
)

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache", MaxBodyBytes: 1 << 20}
}

func newGetContext(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

func TestCacheHitServesStoredResponse(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	c, rec := newGetContext(e, "/")

	payload, err := encodePayload(http.StatusOK, http.Header{"Content-Type": {"text/html"}}, []byte("cached body"))
	require.NoError(t, err)
	mock.ExpectGet(cacheKeyFrom(cfg, c)).SetVal(string(payload))

	mw := NewRedisCache(cfg, rdb)
	h := mw(func(echo.Context) error {
		t.Fatal("handler must not run on a cache hit")
		return nil
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cached body", rec.Body.String())
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheMissStoresResponse(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	c, rec := newGetContext(e, "/poster")
	key := cacheKeyFrom(cfg, c)

	wantHeader := http.Header{
		"Content-Type": {"text/plain; charset=UTF-8"},
		"X-Cache":      {"MISS"},
	}
	wantPayload, err := encodePayload(http.StatusOK, wantHeader, []byte("fresh"))
	require.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSetEx(key, wantPayload, cfg.TTL).SetVal("OK")

	mw := NewRedisCache(cfg, rdb)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	})
	require.NoError(t, h(c))

	assert.Equal(t, "fresh", rec.Body.String())
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheSkipsNonGET(t *testing.T) {
	cfg := cacheTestConfig()
	rdb, mock := redismock.NewClientMock()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/create-order", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/create-order")

	mw := NewRedisCache(cfg, rdb)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(c))

	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheDisabledWithoutRedis(t *testing.T) {
	mw := NewRedisCache(cacheTestConfig(), nil)

	e := echo.New()
	c, rec := newGetContext(e, "/")
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "direct")
	})
	require.NoError(t, h(c))
	assert.Equal(t, "direct", rec.Body.String())
}

func TestPayloadRoundtrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"text/html"}, "Vary": {"Accept", "Cookie"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte("body bytes"))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, []byte("body bytes"), body)

	_, _, _, ok = decodePayload([]byte("short"))
	assert.False(t, ok)
}
