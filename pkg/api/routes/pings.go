package routes

import (
	"encoding/json"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/adjust/rmq/v5"
	"github.com/gofiber/fiber/v2"
)

func PingsRouter(router fiber.Router, ingestQueue rmq.Queue) {
	router.Post("/", submitPings(ingestQueue))
}

// submitPings validates the payload shape and hands it off to the ingest
// queue. Reference data checks happen in the tracker, not here.
func submitPings(ingestQueue rmq.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pings, err := margdf.ParsePingPayload(c.Body())
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Body must be a ping or an array of pings",
			})
		}

		pingsJSON, err := json.Marshal(pings)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Failed to encode pings",
			})
		}

		if err := ingestQueue.PublishBytes(pingsJSON); err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Failed to queue pings for ingest",
			})
		}

		c.SendStatus(fiber.StatusAccepted)
		return c.JSON(fiber.Map{
			"accepted": len(pings),
		})
	}
}
