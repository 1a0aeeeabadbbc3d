package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adjust/rmq/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPingsApp(queue rmq.Queue) *fiber.App {
	app := fiber.New()
	PingsRouter(app.Group("/pings"), queue)

	return app
}

func TestSubmitPingsQueuesBatch(t *testing.T) {
	queue := rmq.NewTestQueue("gps-pings")
	app := setupPingsApp(queue)

	body := `[{"assetIdentifier": "TR-0001", "longitude": 77.1, "latitude": 28.7}]`
	request := httptest.NewRequest("POST", "/pings/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusAccepted, response.StatusCode)
	require.Len(t, queue.LastDeliveries, 1)
	assert.Contains(t, queue.LastDeliveries[0], "TR-0001")
}

func TestSubmitPingsSingleObjectAccepted(t *testing.T) {
	queue := rmq.NewTestQueue("gps-pings")
	app := setupPingsApp(queue)

	body := `{"assetIdentifier": "TR-0001", "longitude": 77.1, "latitude": 28.7}`
	request := httptest.NewRequest("POST", "/pings/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusAccepted, response.StatusCode)
	require.Len(t, queue.LastDeliveries, 1)
	assert.True(t, strings.HasPrefix(queue.LastDeliveries[0], "["))
}

func TestSubmitPingsRejectsMalformedBody(t *testing.T) {
	queue := rmq.NewTestQueue("gps-pings")
	app := setupPingsApp(queue)

	request := httptest.NewRequest("POST", "/pings/", strings.NewReader(`{"assetIdentifier":`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	assert.Empty(t, queue.LastDeliveries)
}
