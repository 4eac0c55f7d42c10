package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamsync-be/internal/bootstrap"
	"teamsync-be/internal/config"
	"teamsync-be/internal/controller"
	"teamsync-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	deny := func(ctx *fiber.Ctx) error { return fiber.ErrUnauthorized }
	container := &bootstrap.Container{
		Logger:             logger.NewNopLogger(),
		AuthController:     controller.NewAuthController(nil, controller.SessionCookie{Name: "token"}),
		UserController:     controller.NewUserController(nil, deny),
		ProjectController:  controller.NewProjectController(nil, deny),
		TeamController:     controller.NewTeamController(nil, deny),
		ChatController:     controller.NewChatController(nil, deny),
		LearningController: controller.NewLearningController(nil, deny),
	}
	cfg := &config.Config{
		App:   config.AppConfig{CorsAllowedOrigins: "http://localhost:5173", MetricsEnabled: true},
		Media: config.MediaConfig{Driver: "s3"},
	}
	return New(cfg, container).GetApp()
}

func TestHealthRoute(t *testing.T) {
	app := newTestServer(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Welcome to TeamSync API!", body["message"])
	assert.Equal(t, "OK", body["status"])
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app := newTestServer(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Route not found", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestGuardedRoutesAreMountedUnderAPIPrefix(t *testing.T) {
	app := newTestServer(t)

	for _, path := range []string{"/api/v1/users/me", "/api/v1/projects", "/api/v1/teams/details", "/api/v1/chats"} {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestServer(t)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(raw), "teamsync_http_requests_total")
}
