package duckdb

import (
	"context"
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

const upsertAction = `
	INSERT INTO actions (game_id, original_event_id, action_id, period_id, time_seconds,
		team_id, player_id, x, y, dx, dy, type_id, type_name, bodypart_id, bodypart_name)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (game_id, action_id) DO UPDATE SET
		original_event_id = EXCLUDED.original_event_id,
		period_id = EXCLUDED.period_id,
		time_seconds = EXCLUDED.time_seconds,
		team_id = EXCLUDED.team_id,
		player_id = EXCLUDED.player_id,
		x = EXCLUDED.x,
		y = EXCLUDED.y,
		dx = EXCLUDED.dx,
		dy = EXCLUDED.dy,
		type_id = EXCLUDED.type_id,
		type_name = EXCLUDED.type_name,
		bodypart_id = EXCLUDED.bodypart_id,
		bodypart_name = EXCLUDED.bodypart_name
`

// ActionRepo handles action log persistence
type ActionRepo struct {
	client *Client
}

// NewActionRepo creates a new action repository
func NewActionRepo(client *Client) *ActionRepo {
	return &ActionRepo{client: client}
}

// InsertBatch inserts multiple actions in a transaction
func (r *ActionRepo) InsertBatch(ctx context.Context, actions model.Actions) error {
	tx, err := r.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertAction)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, a := range actions {
		_, err := stmt.ExecContext(ctx,
			a.GameID, a.OriginalEventID, a.ActionID, a.PeriodID, a.TimeSeconds,
			a.TeamID, a.PlayerID, a.X, a.Y, a.DX, a.DY,
			a.TypeID, a.TypeName, a.BodyPartID, a.BodyPartName,
		)
		if err != nil {
			return fmt.Errorf("failed to insert action %d: %w", a.ActionID, err)
		}
	}

	return tx.Commit()
}

// UpsertGame records the home team of a game
func (r *ActionRepo) UpsertGame(ctx context.Context, g model.Game) error {
	return r.client.Exec(ctx, `
		INSERT INTO games (game_id, home_team_id) VALUES (?, ?)
		ON CONFLICT (game_id) DO UPDATE SET home_team_id = EXCLUDED.home_team_id
	`, g.GameID, g.HomeTeamID)
}

// GetGame retrieves a game by id
func (r *ActionRepo) GetGame(ctx context.Context, gameID int64) (*model.Game, error) {
	var g model.Game
	row := r.client.QueryRow(ctx, "SELECT game_id, home_team_id FROM games WHERE game_id = ?", gameID)
	if err := row.Scan(&g.GameID, &g.HomeTeamID); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByGame retrieves the action log of a game in time order
func (r *ActionRepo) GetByGame(ctx context.Context, gameID int64) (model.Actions, error) {
	query := `
		SELECT game_id, original_event_id, action_id, period_id, time_seconds,
			team_id, player_id, x, y, dx, dy, type_id, type_name, bodypart_id, bodypart_name
		FROM actions
		WHERE game_id = ?
		ORDER BY period_id ASC, action_id ASC
	`

	rows, err := r.client.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	var actions model.Actions
	for rows.Next() {
		var a model.Action
		err := rows.Scan(
			&a.GameID, &a.OriginalEventID, &a.ActionID, &a.PeriodID, &a.TimeSeconds,
			&a.TeamID, &a.PlayerID, &a.X, &a.Y, &a.DX, &a.DY,
			&a.TypeID, &a.TypeName, &a.BodyPartID, &a.BodyPartName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		actions = append(actions, a)
	}

	return actions, rows.Err()
}

// Count returns the number of actions stored for a game
func (r *ActionRepo) Count(ctx context.Context, gameID int64) (int64, error) {
	var count int64
	row := r.client.QueryRow(ctx, "SELECT COUNT(*) FROM actions WHERE game_id = ?", gameID)
	err := row.Scan(&count)
	return count, err
}
