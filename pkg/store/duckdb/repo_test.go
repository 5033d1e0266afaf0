package duckdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljherron8/socceraction/pkg/model"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(filepath.Join(t.TempDir(), "test.duckdb"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	require.NoError(t, InitializeSchema(context.Background(), c))
	return c
}

func testActions() model.Actions {
	return model.Actions{
		{GameID: 1, OriginalEventID: "e0", ActionID: 0, PeriodID: 1, TimeSeconds: 0, TeamID: 10, PlayerID: 1, X: 52.5, Y: 34, DX: 5, TypeID: 0, TypeName: "pass", BodyPartName: "foot"},
		{GameID: 1, OriginalEventID: "e1", ActionID: 1, PeriodID: 1, TimeSeconds: 2, TeamID: 10, PlayerID: 2, X: 57.5, Y: 34, TypeID: 23, TypeName: "receival", BodyPartName: "foot"},
		{GameID: 1, OriginalEventID: "e2", ActionID: 2, PeriodID: 2, TimeSeconds: 1, TeamID: 20, PlayerID: 3, X: 52.5, Y: 34, TypeID: 0, TypeName: "pass", BodyPartName: "head", BodyPartID: 1},
	}
}

func TestActionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewActionRepo(newTestClient(t))

	require.NoError(t, repo.InsertBatch(ctx, testActions()))
	// upsert is idempotent
	require.NoError(t, repo.InsertBatch(ctx, testActions()))

	count, err := repo.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	got, err := repo.GetByGame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, testActions(), got)

	require.NoError(t, repo.UpsertGame(ctx, model.Game{GameID: 1, HomeTeamID: 10}))
	require.NoError(t, repo.UpsertGame(ctx, model.Game{GameID: 1, HomeTeamID: 20}))
	g, err := repo.GetGame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), g.HomeTeamID)
}

func TestFeatureRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewFeatureRepo(newTestClient(t))

	fs := &model.FeatureSet{
		GameID:    1,
		ActionIDs: []int64{0, 1},
		Columns:   []string{"x", "y", "goalscore_diff"},
		Rows:      [][]float64{{52.5, 34, 0}, {57.5, 30, -1}},
	}
	require.NoError(t, repo.InsertSet(ctx, fs))

	got, err := repo.GetByGame(ctx, 1, fs.Columns)
	require.NoError(t, err)
	assert.Equal(t, fs, got)

	// column subset in a different order
	vec, err := repo.GetVector(ctx, 1, 1, []string{"goalscore_diff", "x"})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 57.5}, vec)

	_, err = repo.GetVector(ctx, 1, 5, fs.Columns)
	assert.Error(t, err)
}

func TestLabelRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewLabelRepo(newTestClient(t))

	labels := []model.Label{
		{GameID: 1, ActionID: 0, Scores: true},
		{GameID: 1, ActionID: 1, Concedes: true},
	}
	require.NoError(t, repo.InsertBatch(ctx, labels))

	got, err := repo.GetByGame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, labels, got)
}

func TestDropAllTables(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	require.NoError(t, DropAllTables(ctx, c))
	_, err := NewActionRepo(c).Count(ctx, 1)
	assert.Error(t, err)
}
