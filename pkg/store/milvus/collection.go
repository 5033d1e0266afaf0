package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-sdk-go/v2/entity"
)

const (
	// DefaultCollectionName is the default collection for action feature vectors
	DefaultCollectionName = "action_features"

	embeddingField = "embedding"
)

// CollectionConfig holds configuration for creating a collection
type CollectionConfig struct {
	Name      string `mapstructure:"name"`
	Dimension int    `mapstructure:"-"` // number of feature columns
	Shards    int    `mapstructure:"shards"`
}

// CreateCollection creates the action feature collection if it is missing
func (c *Client) CreateCollection(ctx context.Context, cfg CollectionConfig) error {
	exists, err := c.HasCollection(ctx, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	schema := &entity.Schema{
		CollectionName: cfg.Name,
		Description:    "Atomic action feature vectors for similar-situation search",
		Fields: []*entity.Field{
			{
				Name:       "key",
				DataType:   entity.FieldTypeVarChar,
				PrimaryKey: true,
				AutoID:     false,
				TypeParams: map[string]string{
					"max_length": "64",
				},
			},
			{
				Name:     embeddingField,
				DataType: entity.FieldTypeFloatVector,
				TypeParams: map[string]string{
					"dim": fmt.Sprintf("%d", cfg.Dimension),
				},
			},
			{Name: "game_id", DataType: entity.FieldTypeInt64},
			{Name: "action_id", DataType: entity.FieldTypeInt64},
			{Name: "team_id", DataType: entity.FieldTypeInt64},
			{Name: "type_id", DataType: entity.FieldTypeInt32},
			{Name: "elapsed", DataType: entity.FieldTypeFloat},
		},
	}

	if err := c.conn.CreateCollection(ctx, schema, int32(cfg.Shards)); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	c.logger.Info().Str("collection", cfg.Name).Int("dim", cfg.Dimension).Msg("Created Milvus collection")

	return nil
}

// ActionVector holds the data for inserting one action into Milvus
type ActionVector struct {
	GameID    int64
	ActionID  int64
	TeamID    int64
	TypeID    int32
	Elapsed   float32 // seconds since kick-off
	Embedding []float32
}

// Key returns the primary key of the vector
func (v *ActionVector) Key() string {
	return fmt.Sprintf("%d:%d", v.GameID, v.ActionID)
}

// InsertBatch inserts multiple action vectors
func (c *Client) InsertBatch(ctx context.Context, collectionName string, dataList []*ActionVector) error {
	if len(dataList) == 0 {
		return nil
	}

	keys := make([]string, len(dataList))
	embeddings := make([][]float32, len(dataList))
	gameIDs := make([]int64, len(dataList))
	actionIDs := make([]int64, len(dataList))
	teamIDs := make([]int64, len(dataList))
	typeIDs := make([]int32, len(dataList))
	elapsed := make([]float32, len(dataList))

	for i, d := range dataList {
		keys[i] = d.Key()
		embeddings[i] = d.Embedding
		gameIDs[i] = d.GameID
		actionIDs[i] = d.ActionID
		teamIDs[i] = d.TeamID
		typeIDs[i] = d.TypeID
		elapsed[i] = d.Elapsed
	}

	columns := []entity.Column{
		entity.NewColumnVarChar("key", keys),
		entity.NewColumnFloatVector(embeddingField, len(embeddings[0]), embeddings),
		entity.NewColumnInt64("game_id", gameIDs),
		entity.NewColumnInt64("action_id", actionIDs),
		entity.NewColumnInt64("team_id", teamIDs),
		entity.NewColumnInt32("type_id", typeIDs),
		entity.NewColumnFloat("elapsed", elapsed),
	}

	if _, err := c.conn.Insert(ctx, collectionName, "", columns...); err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	return nil
}

// SearchResult represents a single search hit
type SearchResult struct {
	GameID   int64
	ActionID int64
	TeamID   int64
	TypeID   int32
	Elapsed  float32
	Score    float32 // L2 distance, lower is closer
}

// Search performs a TopK similarity search
func (c *Client) Search(ctx context.Context, collectionName string, embedding []float32, filter string, topK int) ([]SearchResult, error) {
	vectors := []entity.Vector{entity.FloatVector(embedding)}

	sp, err := entity.NewIndexIvfFlatSearchParam(c.nprobe)
	if err != nil {
		return nil, fmt.Errorf("failed to create search param: %w", err)
	}

	outputFields := []string{"game_id", "action_id", "team_id", "type_id", "elapsed"}

	results, err := c.conn.Search(
		ctx,
		collectionName,
		nil, // partitions
		filter,
		outputFields,
		vectors,
		embeddingField,
		entity.L2,
		topK,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	searchResults := make([]SearchResult, 0, results[0].ResultCount)
	for i := 0; i < results[0].ResultCount; i++ {
		result := SearchResult{
			Score: results[0].Scores[i],
		}

		for _, field := range results[0].Fields {
			switch col := field.(type) {
			case *entity.ColumnInt64:
				val, _ := col.ValueByIdx(i)
				switch col.Name() {
				case "game_id":
					result.GameID = val
				case "action_id":
					result.ActionID = val
				case "team_id":
					result.TeamID = val
				}
			case *entity.ColumnInt32:
				if col.Name() == "type_id" {
					result.TypeID, _ = col.ValueByIdx(i)
				}
			case *entity.ColumnFloat:
				if col.Name() == "elapsed" {
					result.Elapsed, _ = col.ValueByIdx(i)
				}
			}
		}

		searchResults = append(searchResults, result)
	}

	return searchResults, nil
}
