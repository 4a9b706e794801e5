package config_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"Recipe-Publisher/cmd/config"
	"Recipe-Publisher/pkg/content"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppServesContentWithAccessLog(t *testing.T) {
	var accessLog bytes.Buffer
	app := config.NewApp(content.NewContentService(content.NewFixtureRepository()), config.AppOptions{AccessLog: &accessLog})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, accessLog.String(), "/api/v1/recipes")
}

func TestNewAppRateLimits(t *testing.T) {
	app := config.NewApp(content.NewContentService(content.NewFixtureRepository()), config.AppOptions{RateLimit: 1})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
