package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/ljherron8/socceraction/pkg/config"
	"github.com/ljherron8/socceraction/pkg/data"
	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/logging"
	"github.com/ljherron8/socceraction/pkg/metrics"
	"github.com/ljherron8/socceraction/pkg/pipeline"
	"github.com/ljherron8/socceraction/pkg/store/duckdb"
	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

func main() {
	csvPath := flag.String("csv", "", "Path to CSV file with atomic actions")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *csvPath == "" {
		fmt.Println("Usage: backfill -csv <path> [-config <path>]")
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

	registry := feature.NewRegistry(cfg.Vocabulary())
	transformers, err := registry.Lookup(cfg.Features.Transformers...)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid transformer list")
	}

	m := metrics.NewPipeline(prometheus.DefaultRegisterer)
	extractor := pipeline.NewExtractor(registry.Vocabulary(), cfg.Features.NbPrevActions, transformers,
		pipeline.WithLeftToRight(cfg.Features.PlayLeftToRight),
		pipeline.WithMetrics(m),
		pipeline.WithLogger(logger),
	)
	columns, err := extractor.Columns()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve feature columns")
	}
	log.Info().
		Int("nb_prev_actions", cfg.Features.NbPrevActions).
		Int("columns", len(columns)).
		Msg("Starting backfill")

	// Initialize DuckDB
	duckClient, err := duckdb.NewClient(cfg.DuckDB.Path, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DuckDB")
	}
	defer duckClient.Close()

	if err := duckdb.InitializeSchema(ctx, duckClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	actionRepo := duckdb.NewActionRepo(duckClient)
	featureRepo := duckdb.NewFeatureRepo(duckClient)
	labelRepo := duckdb.NewLabelRepo(duckClient)

	// Initialize Milvus
	var milvusClient *milvus.Client
	if cfg.Milvus.Enabled {
		milvusClient, err = milvus.NewClient(ctx, cfg.Milvus.Config, logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Milvus")
		}
		defer milvusClient.Close()

		collectionCfg := milvus.CollectionConfig{
			Name:      cfg.Milvus.Collection,
			Dimension: len(columns),
			Shards:    cfg.Milvus.Shards,
		}
		if err := milvusClient.CreateCollection(ctx, collectionCfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to create Milvus collection")
		}
	}

	// Load data
	provider := data.NewCSVProvider(*csvPath)
	games, err := provider.Games(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("csv", *csvPath).Msg("Failed to load actions")
	}
	log.Info().Int("games", len(games)).Msg("Loaded action log")

	var totalActions, totalVectors int
	var storedActions int64
	for _, game := range games {
		actions, err := provider.FetchGame(ctx, game.GameID)
		if err != nil {
			log.Fatal().Err(err).Int64("game_id", game.GameID).Msg("Failed to fetch game")
		}

		if err := actionRepo.UpsertGame(ctx, game); err != nil {
			log.Fatal().Err(err).Msg("Failed to store game")
		}
		if err := actionRepo.InsertBatch(ctx, actions); err != nil {
			log.Fatal().Err(err).Msg("Failed to insert actions")
		}
		stored, err := actionRepo.Count(ctx, game.GameID)
		if err != nil {
			log.Fatal().Err(err).Int64("game_id", game.GameID).Msg("Failed to count actions")
		}
		storedActions += stored

		result, err := extractor.Process(actions, game.HomeTeamID, cfg.Features.LabelHorizon)
		if err != nil {
			log.Warn().Err(err).Int64("game_id", game.GameID).Msg("Failed to extract features")
			continue
		}
		if err := featureRepo.InsertSet(ctx, result.Features); err != nil {
			log.Fatal().Err(err).Msg("Failed to insert features")
		}
		if err := labelRepo.InsertBatch(ctx, result.Labels); err != nil {
			log.Fatal().Err(err).Msg("Failed to insert labels")
		}
		totalActions += len(actions)

		if milvusClient == nil {
			continue
		}
		vectors := pipeline.ActionVectors(actions, result.Features)
		for i := 0; i < len(vectors); i += cfg.Pipeline.BatchSize {
			end := min(i+cfg.Pipeline.BatchSize, len(vectors))
			if err := milvusClient.InsertBatch(ctx, cfg.Milvus.Collection, vectors[i:end]); err != nil {
				log.Fatal().Err(err).Msg("Failed to insert vectors")
			}
		}
		totalVectors += len(vectors)

		log.Debug().Int64("game_id", game.GameID).Int("actions", len(actions)).Msg("Processed game")
	}

	if milvusClient != nil {
		if err := milvusClient.Flush(ctx, cfg.Milvus.Collection); err != nil {
			log.Warn().Err(err).Msg("Failed to flush Milvus")
		}
		if err := milvusClient.CreateIndex(ctx, cfg.Milvus.Collection, "embedding"); err != nil {
			log.Warn().Err(err).Msg("Failed to create index")
		}
		if err := milvusClient.LoadCollection(ctx, cfg.Milvus.Collection); err != nil {
			log.Warn().Err(err).Msg("Failed to load collection")
		}
	}

	log.Info().
		Int("games", len(games)).
		Int("actions", totalActions).
		Int64("stored_actions", storedActions).
		Int("vectors", totalVectors).
		Msg("Backfill completed")
}
