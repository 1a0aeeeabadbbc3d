package api

import (
	"os"

	"github.com/JaiBansal007/Marg-Gps/pkg/database"
	"github.com/JaiBansal007/Marg-Gps/pkg/redis_client"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/JaiBansal007/Marg-Gps/pkg/tracker"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: defaultListen(),
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					ingestQueue, err := redis_client.QueueConnection.OpenQueue(tracker.PingsQueueName)
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), store.NewMongoDB(), ingestQueue)
				},
			},
		},
	}
}

func defaultListen() string {
	if listen := os.Getenv("MARG_API_LISTEN"); listen != "" {
		return listen
	}

	return ":8080"
}
