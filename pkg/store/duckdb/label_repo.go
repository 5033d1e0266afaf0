package duckdb

import (
	"context"
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

// LabelRepo handles label persistence
type LabelRepo struct {
	client *Client
}

// NewLabelRepo creates a new label repository
func NewLabelRepo(client *Client) *LabelRepo {
	return &LabelRepo{client: client}
}

// InsertBatch inserts labels in a transaction
func (r *LabelRepo) InsertBatch(ctx context.Context, labels []model.Label) error {
	tx, err := r.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO action_labels (game_id, action_id, scores, concedes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (game_id, action_id) DO UPDATE SET
			scores = EXCLUDED.scores,
			concedes = EXCLUDED.concedes
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, l := range labels {
		if _, err := stmt.ExecContext(ctx, l.GameID, l.ActionID, l.Scores, l.Concedes); err != nil {
			return fmt.Errorf("failed to insert label: %w", err)
		}
	}

	return tx.Commit()
}

// GetByGame retrieves the labels of a game ordered by action id
func (r *LabelRepo) GetByGame(ctx context.Context, gameID int64) ([]model.Label, error) {
	rows, err := r.client.Query(ctx, `
		SELECT game_id, action_id, scores, concedes
		FROM action_labels
		WHERE game_id = ?
		ORDER BY action_id ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.GameID, &l.ActionID, &l.Scores, &l.Concedes); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}
