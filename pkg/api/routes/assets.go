package routes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/redis_client"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/eko/gocache/lib/v4/cache"
	gocachestore "github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

var assetPingsCache *cache.Cache[string]

func AssetsRouter(router fiber.Router, repository store.Repository) {
	if redis_client.Client != nil {
		redisStore := redisstore.NewRedis(redis_client.Client, gocachestore.WithExpiration(30*time.Second))
		assetPingsCache = cache.New[string](redisStore)
	}

	router.Get("/:identifier/pings", getAssetPings(repository))
}

func getAssetPings(repository store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.Params("identifier")
		detailed := c.Query("detailed") == "yes"

		cacheKey := fmt.Sprintf("asset_pings/%s/%t", identifier, detailed)
		if assetPingsCache != nil {
			if cached, err := assetPingsCache.Get(c.Context(), cacheKey); err == nil {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.SendString(cached)
			}
		}

		pings, err := repository.PingsByAsset(c.Context(), identifier)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Failed to get pings for asset",
			})
		}

		groups := []string{"basic"}
		if detailed {
			groups = append(groups, "detailed")
		}

		pingsReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, pings)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce pings",
			})
		}

		if assetPingsCache != nil {
			if body, marshalErr := json.Marshal(pingsReduced); marshalErr == nil {
				assetPingsCache.Set(c.Context(), cacheKey, string(body))
			}
		}

		return c.JSON(pingsReduced)
	}
}
