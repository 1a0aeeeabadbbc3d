package tracker

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/JaiBansal007/Marg-Gps/pkg/database"
	"github.com/JaiBansal007/Marg-Gps/pkg/elastic_client"
	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/redis_client"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "tracker",
		Usage: "Ingests vehicle ping batches and tracks shipment stop crossings",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run an instance of the ping tracker",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(false); err != nil {
						return err
					}

					crossingEventsQueue, err := redis_client.QueueConnection.OpenQueue(CrossingEventsQueueName)
					if err != nil {
						return err
					}

					pipeline := NewPipeline(store.NewMongoDB(), &QueuePublisher{Queue: crossingEventsQueue})

					StartConsumers(pipeline)

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					elastic_client.WaitUntilQueueEmpty()

					return nil
				},
			},
			{
				Name:  "testping",
				Usage: "run a sample ping through the pipeline",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					repository := store.NewMongoDB()
					pipeline := NewPipeline(repository, prettyPublisher{})

					ping := margdf.RawPing{
						AssetIdentifier:  "TR-0001",
						VendorIdentifier: "intellitrac",

						PrimaryTimestamp:   margdf.Timestamp(1717171717),
						SecondaryTimestamp: margdf.Timestamp(1717171720),

						Longitude: 77.1025,
						Latitude:  28.7041,

						Heading:        180,
						Speed:          42,
						SatelliteCount: 9,
						BatteryLevel:   87,
					}

					if err := pipeline.Ingest(c.Context, []margdf.RawPing{ping}); err != nil {
						return err
					}

					pings, err := repository.PingsByAsset(c.Context, ping.AssetIdentifier)
					pretty.Println(pings, err)

					return nil
				},
			},
		},
	}
}

type prettyPublisher struct{}

func (prettyPublisher) PublishCrossing(event *margdf.StopCrossingEvent) error {
	pretty.Println(event)
	return nil
}
