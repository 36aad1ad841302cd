package http

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/videogames-portal/internal/api/http/handlers"
	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/observability"
	"github.com/spec-kit/videogames-portal/internal/session"
)

func newTestApp(t *testing.T) (*fiber.App, session.Store) {
	t.Helper()

	store := session.NewMemoryStore()
	issuer := session.NewIssuer(store, config.SessionConfig{
		TokenTTL:   24 * time.Hour,
		IssueDelay: time.Millisecond,
	})
	provider := catalog.NewStaticProvider(config.CatalogConfig{
		ListDelay:   time.Millisecond,
		DetailDelay: time.Millisecond,
	})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:  handlers.NewHealthHandler("videogames-portal", "test", nil),
		Auth:    handlers.NewAuthHandler(issuer, store),
		Catalog: handlers.NewCatalogHandler(provider),
		Guard:   NewRouteGuard(store),
	})
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *stdhttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *stdhttp.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestRootRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodGet, "/", nil)
	assert.Equal(t, stdhttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestUnknownPathRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodGet, "/no-such-view", nil)
	assert.Equal(t, stdhttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginViewIsPublic(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodGet, "/login", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, "login", payload["view"])
}

func TestIssueTokenRejectsShortName(t *testing.T) {
	app, store := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodPost, "/auth/token", map[string]string{"name": " J "})
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)

	payload := decodeBody(t, resp)
	errBlock := payload["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errBlock["code"])

	_, ok := store.Get()
	assert.False(t, ok, "validation failure must not issue a token")
}

func TestIssueTokenSuccess(t *testing.T) {
	app, store := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodPost, "/auth/token", map[string]string{"name": "Jane Doe"})
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, data["expires_at"])

	stored, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, token, string(stored))
}

func TestGuardDeniesProtectedRoutesWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/video-games", "/video-games/3"} {
		resp := doRequest(t, app, stdhttp.MethodGet, path, nil)
		assert.Equal(t, stdhttp.StatusFound, resp.StatusCode, "path %s", path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), "path %s", path)
	}
}

func TestListViewWithSession(t *testing.T) {
	app, store := newTestApp(t)
	store.Set("session.token")

	resp := doRequest(t, app, stdhttp.MethodGet, "/video-games", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	items := data["items"].([]any)
	assert.Len(t, items, 5)

	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(5), summary["count"])
	assert.Equal(t, "9.0", summary["average_rating"])
	assert.Equal(t, "54.99", summary["average_price"])
	assert.Len(t, summary["unique_genres"].([]any), 5)
}

func TestDetailViewWithSession(t *testing.T) {
	app, store := newTestApp(t)
	store.Set("session.token")

	resp := doRequest(t, app, stdhttp.MethodGet, "/video-games/3", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	game := data["game"].(map[string]any)
	assert.Equal(t, "Cyberpunk 2077", game["title"])
	assert.Equal(t, float64(3), data["filled_stars"])
}

func TestDetailViewNotFound(t *testing.T) {
	app, store := newTestApp(t)
	store.Set("session.token")

	resp := doRequest(t, app, stdhttp.MethodGet, "/video-games/999", nil)
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)

	payload := decodeBody(t, resp)
	errBlock := payload["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBlock["code"])
	details := errBlock["details"].(map[string]any)
	assert.Equal(t, "999", details["requested_id"])
}

func TestLogoutClearsSessionAndGuardDeniesAgain(t *testing.T) {
	app, store := newTestApp(t)
	store.Set("session.token")

	resp := doRequest(t, app, stdhttp.MethodDelete, "/auth/token", nil)
	assert.Equal(t, stdhttp.StatusNoContent, resp.StatusCode)

	_, ok := store.Get()
	assert.False(t, ok)

	resp = doRequest(t, app, stdhttp.MethodGet, "/video-games", nil)
	assert.Equal(t, stdhttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestHealthLive(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, stdhttp.MethodGet, "/health/live", nil)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, "alive", payload["status"])
}

func TestGuardCanEnterTracksStore(t *testing.T) {
	store := session.NewMemoryStore()
	guard := NewRouteGuard(store)

	assert.False(t, guard.CanEnter("/video-games"))
	store.Set("tok")
	assert.True(t, guard.CanEnter("/video-games"))
	store.Clear()
	assert.False(t, guard.CanEnter("/video-games"))
}
