package duckdb

import (
	"context"
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

// FeatureRepo handles feature matrix persistence
type FeatureRepo struct {
	client *Client
}

// NewFeatureRepo creates a new feature repository
func NewFeatureRepo(client *Client) *FeatureRepo {
	return &FeatureRepo{client: client}
}

// InsertSet stores the feature matrix of one game in a transaction
func (r *FeatureRepo) InsertSet(ctx context.Context, fs *model.FeatureSet) error {
	tx, err := r.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO action_features (game_id, action_id, feature, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (game_id, action_id, feature) DO UPDATE SET
			value = EXCLUDED.value
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range fs.Values() {
		if _, err := stmt.ExecContext(ctx, v.GameID, v.ActionID, v.Feature, v.Value); err != nil {
			return fmt.Errorf("failed to insert feature %s: %w", v.Feature, err)
		}
	}

	return tx.Commit()
}

// GetByGame rebuilds the feature matrix of a game for the given columns.
// Rows are ordered by action id; missing cells are left at zero.
func (r *FeatureRepo) GetByGame(ctx context.Context, gameID int64, columns []string) (*model.FeatureSet, error) {
	colIdx := make(map[string]int, len(columns))
	for i, c := range columns {
		colIdx[c] = i
	}

	rows, err := r.client.Query(ctx, `
		SELECT action_id, feature, value
		FROM action_features
		WHERE game_id = ?
		ORDER BY action_id ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	fs := &model.FeatureSet{GameID: gameID, Columns: columns}
	rowIdx := make(map[int64]int)
	for rows.Next() {
		var (
			actionID int64
			feature  string
			value    float64
		)
		if err := rows.Scan(&actionID, &feature, &value); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		c, ok := colIdx[feature]
		if !ok {
			continue
		}
		ri, ok := rowIdx[actionID]
		if !ok {
			ri = len(fs.Rows)
			rowIdx[actionID] = ri
			fs.ActionIDs = append(fs.ActionIDs, actionID)
			fs.Rows = append(fs.Rows, make([]float64, len(columns)))
		}
		fs.Rows[ri][c] = value
	}

	return fs, rows.Err()
}

// GetVector returns the feature vector of a single action
func (r *FeatureRepo) GetVector(ctx context.Context, gameID, actionID int64, columns []string) ([]float64, error) {
	fs, err := r.GetByGame(ctx, gameID, columns)
	if err != nil {
		return nil, err
	}
	for i, id := range fs.ActionIDs {
		if id == actionID {
			return fs.Rows[i], nil
		}
	}
	return nil, fmt.Errorf("no features for game %d action %d", gameID, actionID)
}
