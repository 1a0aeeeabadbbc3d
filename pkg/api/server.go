package api

import (
	"github.com/JaiBansal007/Marg-Gps/pkg/api/routes"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/adjust/rmq/v5"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, repository store.Repository, ingestQueue rmq.Queue) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PingsRouter(group.Group("/pings"), ingestQueue)
	routes.AssetsRouter(group.Group("/assets"), repository)

	return webApp.Listen(listen)
}
