package routes

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssetsApp(repository store.Repository) *fiber.App {
	app := fiber.New()
	AssetsRouter(app.Group("/assets"), repository)

	return app
}

func TestGetAssetPings(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.InsertPings(context.Background(), []*margdf.Ping{
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 100, Location: margdf.NewPointLocation(77.0, 28.0), SatelliteCount: 9},
	}))

	app := setupAssetsApp(memory)

	response, err := app.Test(httptest.NewRequest("GET", "/assets/TR-0001/pings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "TR-0001")
	assert.NotContains(t, string(body), "SatelliteCount")
}

func TestGetAssetPingsDetailed(t *testing.T) {
	memory := store.NewMemory()
	require.NoError(t, memory.InsertPings(context.Background(), []*margdf.Ping{
		{AssetIdentifier: "TR-0001", EffectiveTimestamp: 100, Location: margdf.NewPointLocation(77.0, 28.0), SatelliteCount: 9},
	}))

	app := setupAssetsApp(memory)

	response, err := app.Test(httptest.NewRequest("GET", "/assets/TR-0001/pings?detailed=yes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "SatelliteCount")
}

func TestGetAssetPingsUnknownAsset(t *testing.T) {
	app := setupAssetsApp(store.NewMemory())

	response, err := app.Test(httptest.NewRequest("GET", "/assets/TR-0404/pings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
