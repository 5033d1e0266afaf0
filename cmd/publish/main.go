package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ljherron8/socceraction/pkg/config"
	"github.com/ljherron8/socceraction/pkg/data"
	"github.com/ljherron8/socceraction/pkg/logging"
	"github.com/ljherron8/socceraction/pkg/queue/nats"
)

func main() {
	csvPath := flag.String("csv", "", "Path to CSV file with atomic actions")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *csvPath == "" {
		fmt.Println("Usage: publish -csv <path> [-config <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	ctx := context.Background()

	natsClient, err := nats.NewClient(cfg.NATS, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer natsClient.Close()

	if err := natsClient.CreateStream(ctx, []string{nats.SubjectActionsExtract, nats.SubjectFeaturesWrite}); err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream")
	}

	provider := data.NewCSVProvider(*csvPath)
	games, err := provider.Games(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load actions")
	}

	for _, game := range games {
		actions, err := provider.FetchGame(ctx, game.GameID)
		if err != nil {
			log.Fatal().Err(err).Int64("game_id", game.GameID).Msg("Failed to fetch game")
		}
		msg := nats.NewActionBatch(game, actions)
		if err := natsClient.PublishJSON(ctx, nats.SubjectActionsExtract, msg, msg.BatchID); err != nil {
			log.Fatal().Err(err).Msg("Failed to publish action batch")
		}
		log.Info().
			Str("batch_id", msg.BatchID).
			Int64("game_id", game.GameID).
			Int("actions", len(actions)).
			Msg("Published game")
	}
}
