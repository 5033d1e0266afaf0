package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ljherron8/socceraction/pkg/config"
	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/logging"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/rerank"
	"github.com/ljherron8/socceraction/pkg/store/duckdb"
	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	gameID := flag.Int64("game", 0, "Game id of the query action")
	actionID := flag.Int64("action", -1, "Action id of the query action")
	topK := flag.Int("topk", 10, "Top K results")
	otherGames := flag.Bool("other-games", true, "Only return actions from other games")
	sameType := flag.Bool("same-type", false, "Only return actions of the query action's type")
	flag.Parse()

	if *actionID < 0 {
		fmt.Println("Usage: search -game <id> -action <id> [options]")
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
	columns, err := feature.ColumnNames(transformers, cfg.Features.NbPrevActions, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve feature columns")
	}

	// Initialize DuckDB
	duckClient, err := duckdb.NewClient(cfg.DuckDB.Path, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DuckDB")
	}
	defer duckClient.Close()

	actionRepo := duckdb.NewActionRepo(duckClient)
	featureRepo := duckdb.NewFeatureRepo(duckClient)

	actions, err := actionRepo.GetByGame(ctx, *gameID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch game")
	}
	query := findAction(actions, *actionID)
	if query == nil {
		log.Fatal().Int64("game_id", *gameID).Int64("action_id", *actionID).Msg("Action not found")
	}

	vector, err := featureRepo.GetVector(ctx, *gameID, *actionID, columns)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch feature vector")
	}

	// Initialize Milvus
	milvusClient, err := milvus.NewClient(ctx, cfg.Milvus.Config, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Milvus")
	}
	defer milvusClient.Close()

	if err := milvusClient.LoadCollection(ctx, cfg.Milvus.Collection); err != nil {
		log.Fatal().Err(err).Msg("Failed to load collection")
	}

	var filter milvus.Filter
	if *otherGames {
		filter.ExcludeGameID = *gameID
	}
	if *sameType {
		typeID := int32(query.TypeID)
		filter.TypeID = &typeID
	}
	results, err := milvusClient.Search(ctx, cfg.Milvus.Collection, model.FromFloat64(vector), filter.Expr(), *topK)
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}

	reranker := rerank.NewReranker(cfg.Rerank)
	ranked := reranker.Rerank(results, feature.ElapsedSeconds(query))

	vocab := registry.Vocabulary()
	fmt.Printf("Query: game %d action %d (%s, %.0fs)\n\n", query.GameID, query.ActionID, query.TypeName, feature.ElapsedSeconds(query))
	fmt.Printf("%-5s %-10s %-8s %-16s %-8s %-10s %-10s\n", "Rank", "Game", "Action", "Type", "Minute", "Distance", "Final")
	fmt.Println("--------------------------------------------------------------------------")
	for i, r := range ranked {
		typeName, ok := vocab.ActionTypeName(int(r.TypeID))
		if !ok {
			typeName = fmt.Sprintf("type_%d", r.TypeID)
		}
		fmt.Printf("%-5d %-10d %-8d %-16s %-8.1f %-10.4f %-10.4f\n",
			i+1, r.GameID, r.ActionID, typeName, r.Elapsed/60, r.Score, r.FinalScore)
	}
}

func findAction(actions model.Actions, actionID int64) *model.Action {
	for i := range actions {
		if actions[i].ActionID == actionID {
			return &actions[i]
		}
	}
	return nil
}
