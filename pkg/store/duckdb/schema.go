package duckdb

import (
	"context"
	"fmt"
)

// CreateActionsTable creates the atomic action log table
const CreateActionsTable = `
CREATE TABLE IF NOT EXISTS actions (
    game_id BIGINT NOT NULL,
    original_event_id VARCHAR,
    action_id BIGINT NOT NULL,
    period_id INTEGER NOT NULL,
    time_seconds DOUBLE NOT NULL,
    team_id BIGINT NOT NULL,
    player_id BIGINT,
    x DOUBLE,
    y DOUBLE,
    dx DOUBLE,
    dy DOUBLE,
    type_id INTEGER NOT NULL,
    type_name VARCHAR NOT NULL,
    bodypart_id INTEGER,
    bodypart_name VARCHAR,
    PRIMARY KEY (game_id, action_id)
);
`

// CreateGamesTable creates the games table
const CreateGamesTable = `
CREATE TABLE IF NOT EXISTS games (
    game_id BIGINT PRIMARY KEY,
    home_team_id BIGINT NOT NULL
);
`

// CreateActionFeaturesTable stores feature matrices in long form so that
// any transformer list fits one schema
const CreateActionFeaturesTable = `
CREATE TABLE IF NOT EXISTS action_features (
    game_id BIGINT NOT NULL,
    action_id BIGINT NOT NULL,
    feature VARCHAR NOT NULL,
    value DOUBLE,
    PRIMARY KEY (game_id, action_id, feature)
);

CREATE INDEX IF NOT EXISTS idx_action_features_game ON action_features(game_id);
`

// CreateActionLabelsTable creates the labels table
const CreateActionLabelsTable = `
CREATE TABLE IF NOT EXISTS action_labels (
    game_id BIGINT NOT NULL,
    action_id BIGINT NOT NULL,
    scores BOOLEAN NOT NULL,
    concedes BOOLEAN NOT NULL,
    PRIMARY KEY (game_id, action_id)
);
`

// InitializeSchema creates all required tables
func InitializeSchema(ctx context.Context, c *Client) error {
	schemas := []string{
		CreateActionsTable,
		CreateGamesTable,
		CreateActionFeaturesTable,
		CreateActionLabelsTable,
	}

	for _, schema := range schemas {
		if err := c.Exec(ctx, schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with caution)
func DropAllTables(ctx context.Context, c *Client) error {
	tables := []string{"action_labels", "action_features", "games", "actions"}
	for _, table := range tables {
		if err := c.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
