package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubhub/club-service/internal/auth"
	"github.com/clubhub/club-service/internal/config"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/observability"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenIssuer, *auth.Gate) {
	t.Helper()

	issuer := auth.NewTokenIssuer(config.AuthConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  "1h",
		RefreshTokenTTL: "7d",
	})
	gate := auth.NewGate(issuer)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	return app, issuer, gate
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, errorEnvelope) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)
	return resp, envelope
}

func TestOpenRouteSkipsGate(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateRejectsMissingToken(t *testing.T) {
	app, _, gate := newTestApp(t)
	app.Get("/guarded", gate.Require("members.read"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, envelope := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", envelope.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, envelope = doRequest(t, app, req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", envelope.Error.Code)
}

func TestGateRejectsInvalidToken(t *testing.T) {
	app, _, gate := newTestApp(t)
	app.Get("/guarded", gate.Require("members.read"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, envelope := doRequest(t, app, req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", envelope.Error.Code)
}

func TestGateRejectsInsufficientPermission(t *testing.T) {
	app, issuer, gate := newTestApp(t)
	app.Delete("/guarded", gate.Require("permissions.delete"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, []string{"permissions.read"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp, envelope := doRequest(t, app, req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_PERMISSION", envelope.Error.Code)
	assert.Equal(t, "permissions.delete", envelope.Error.Details["permission"])
}

func TestGateAllowsGrantedPermission(t *testing.T) {
	app, issuer, gate := newTestApp(t)
	app.Get("/guarded", gate.Require("members.read"), func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"subject": claims.Subject})
	})

	pair, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@b.c"}, []string{"members.read"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, envelope := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}
