package pipeline

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/metrics"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

const (
	home int64 = 1
	away int64 = 2
)

func testGame() model.Actions {
	return model.Actions{
		{GameID: 9, ActionID: 0, PeriodID: 1, TimeSeconds: 0, TeamID: home, X: 52.5, Y: 34, DX: 10, TypeName: "pass"},
		{GameID: 9, ActionID: 1, PeriodID: 1, TimeSeconds: 3, TeamID: away, X: 40, Y: 20, DX: -5, TypeName: "pass"},
		{GameID: 9, ActionID: 2, PeriodID: 1, TimeSeconds: 4, TeamID: away, X: 105, Y: 34, TypeName: "goal"},
	}
}

func newTestExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()
	v := spadl.DefaultVocabulary()
	fs, err := feature.NewRegistry(v).Lookup("location", "goalscore", "time_delta")
	require.NoError(t, err)
	return NewExtractor(v, 1, fs, opts...)
}

func TestExtract(t *testing.T) {
	e := newTestExtractor(t)
	actions := testGame()
	before := actions.Clone()

	frame, err := e.Extract(actions, home)
	require.NoError(t, err)
	assert.Equal(t, 3, frame.Rows())

	xs, _ := frame.Column("x")
	// away actions are mirrored
	assert.Equal(t, []float64{52.5, 65, 0}, xs)
	assert.Equal(t, before, actions, "input log is not mutated")

	cols, err := e.Columns()
	require.NoError(t, err)
	assert.Equal(t, cols, frame.Columns())
}

func TestExtractWithoutNormalization(t *testing.T) {
	e := newTestExtractor(t, WithLeftToRight(false))
	frame, err := e.Extract(testGame(), home)
	require.NoError(t, err)

	xs, _ := frame.Column("x")
	assert.Equal(t, []float64{52.5, 40, 105}, xs)
}

func TestExtractEmptyGame(t *testing.T) {
	_, err := newTestExtractor(t).Extract(nil, home)
	assert.ErrorIs(t, err, ErrEmptyGame)
}

func TestExtractRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPipeline(reg)
	e := newTestExtractor(t, WithMetrics(m))

	_, err := e.Extract(testGame(), home)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesProcessed))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActionsProcessed))

	errBuild := errors.New("no states")
	e.Build = func(model.Actions, int) (model.GameStates, error) { return nil, errBuild }
	_, err = e.Extract(testGame(), home)
	assert.ErrorIs(t, err, errBuild)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExtractionFailures.WithLabelValues("gamestates")))

	_, err = e.Columns()
	assert.ErrorIs(t, err, errBuild)

	e.Build = gamestate.Build
	_, err = e.Columns()
	require.NoError(t, err)
	assert.Equal(t, 6.0, testutil.ToFloat64(m.FeatureColumns))
}

func TestExtractWithStreamingBuilder(t *testing.T) {
	batch, err := newTestExtractor(t).Extract(testGame(), home)
	require.NoError(t, err)

	stream, err := newTestExtractor(t, WithBuilder(gamestate.BuildStreaming)).Extract(testGame(), home)
	require.NoError(t, err)
	assert.Equal(t, batch.Matrix(), stream.Matrix())
}

func TestProcess(t *testing.T) {
	e := newTestExtractor(t)
	actions := testGame()

	res, err := e.Process(actions, home, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(9), res.Features.GameID)
	assert.Equal(t, []int64{0, 1, 2}, res.Features.ActionIDs)
	assert.Equal(t, []string{"x", "y", "goalscore_team", "goalscore_opponent", "goalscore_diff", "time_delta_1"}, res.Features.Columns)
	require.Len(t, res.Labels, 3)
	assert.False(t, res.Labels[0].Scores)
	assert.True(t, res.Labels[1].Scores)
	assert.True(t, res.Labels[0].Concedes)

	vectors := ActionVectors(actions, res.Features)
	require.Len(t, vectors, 3)
	assert.Equal(t, "9:2", vectors[2].Key())
	assert.Equal(t, away, vectors[2].TeamID)
	assert.Equal(t, float32(4), vectors[2].Elapsed)
	assert.Len(t, vectors[2].Embedding, 6)
}
