package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ljherron8/socceraction/pkg/config"
	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/logging"
	"github.com/ljherron8/socceraction/pkg/metrics"
	"github.com/ljherron8/socceraction/pkg/pipeline"
	"github.com/ljherron8/socceraction/pkg/queue/nats"
	"github.com/ljherron8/socceraction/pkg/store/duckdb"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	v, err := config.New(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Decode(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	// Only the log level is applied on reload; the rest needs a restart.
	config.Watch(v, func(next *config.Config) {
		lvl, err := logging.ParseLevel(next.Log.Level)
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring config reload")
			return
		}
		zerolog.SetGlobalLevel(lvl)
		log.Info().Str("level", lvl.String()).Msg("Config reloaded")
	}, func(err error) {
		log.Warn().Err(err).Msg("Invalid config after reload")
	})

	log.Info().Str("nats", cfg.NATS.URL).Str("duckdb", cfg.DuckDB.Path).Msg("Starting Writer Worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := feature.NewRegistry(cfg.Vocabulary())
	transformers, err := registry.Lookup(cfg.Features.Transformers...)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid transformer list")
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewPipeline(reg)
	extractor := pipeline.NewExtractor(registry.Vocabulary(), cfg.Features.NbPrevActions, transformers,
		pipeline.WithLeftToRight(cfg.Features.PlayLeftToRight),
		pipeline.WithBuilder(gamestate.BuildStreaming),
		pipeline.WithMetrics(m),
		pipeline.WithLogger(logger),
	)
	if _, err := extractor.Columns(); err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve feature columns")
	}

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

	// Initialize NATS
	natsClient, err := nats.NewClient(cfg.NATS, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer natsClient.Close()

	subjects := []string{nats.SubjectActionsExtract, nats.SubjectFeaturesWrite}
	if err := natsClient.CreateStream(ctx, subjects); err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream")
	}

	// Extract features from incoming action batches
	extractConsumer, err := natsClient.Subscribe(ctx, nats.SubjectActionsExtract, "feature-extractor", func(msg jetstream.Msg) error {
		batch, err := nats.DecodeActionBatch(msg.Data())
		if err != nil {
			return fmt.Errorf("failed to decode action batch: %w", err)
		}
		if len(batch.Actions) == 0 {
			return nil
		}

		if err := actionRepo.UpsertGame(ctx, batch.Game); err != nil {
			return err
		}
		if err := actionRepo.InsertBatch(ctx, batch.Actions); err != nil {
			return err
		}

		result, err := extractor.Process(batch.Actions, batch.Game.HomeTeamID, cfg.Features.LabelHorizon)
		if errors.Is(err, pipeline.ErrEmptyGame) {
			return nil
		}
		if err != nil {
			return err
		}

		return natsClient.PublishJSON(ctx, nats.SubjectFeaturesWrite, &nats.FeatureBatchMsg{
			BatchID:  batch.BatchID,
			Features: result.Features,
			Labels:   result.Labels,
		}, batch.BatchID)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe to action batches")
	}
	defer extractConsumer.Stop()

	// Persist computed features
	writeConsumer, err := natsClient.Subscribe(ctx, nats.SubjectFeaturesWrite, "feature-writer", func(msg jetstream.Msg) error {
		batch, err := nats.DecodeFeatureBatch(msg.Data())
		if err != nil {
			return fmt.Errorf("failed to decode feature batch: %w", err)
		}
		if batch.Features == nil {
			return nil
		}

		if err := featureRepo.InsertSet(ctx, batch.Features); err != nil {
			return err
		}
		if err := labelRepo.InsertBatch(ctx, batch.Labels); err != nil {
			return err
		}

		log.Info().
			Str("batch_id", batch.BatchID).
			Int64("game_id", batch.Features.GameID).
			Int("actions", len(batch.Features.ActionIDs)).
			Msg("Stored features")
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe to feature batches")
	}
	defer writeConsumer.Stop()

	// Serve metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()

	log.Info().Str("metrics", cfg.Metrics.Addr).Msg("Writer Worker started, waiting for messages")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("Shutting down Writer Worker")
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	_ = srv.Shutdown(shutdownCtx)
}
