package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

func TestPlayLeftToRight(t *testing.T) {
	pitch := spadl.DefaultPitch()
	gs := model.GameStates{model.Actions{
		{TeamID: homeTeam, X: 10, Y: 20, DX: 5, DY: -1},
		{TeamID: awayTeam, X: 10, Y: 20, DX: 5, DY: -1},
	}}

	out := feature.PlayLeftToRight(gs, homeTeam, pitch)

	assert.Equal(t, gs[0][0], out[0][0], "home action is untouched")
	away := out[0][1]
	assert.Equal(t, 95.0, away.X)
	assert.Equal(t, 48.0, away.Y)
	assert.Equal(t, -5.0, away.DX)
	assert.Equal(t, 1.0, away.DY)
}

func TestPlayLeftToRightDoesNotMutateInput(t *testing.T) {
	actions := sampleGame(t)
	gs := buildStates(t, actions, 2)
	before := gs.Clone()

	_ = feature.PlayLeftToRight(gs, homeTeam, spadl.DefaultPitch())
	assert.Equal(t, before, gs)
}

func TestPlayLeftToRightMirrorsEveryLag(t *testing.T) {
	actions := sampleGame(t)
	gs := buildStates(t, actions, 2)

	out := feature.PlayLeftToRight(gs, homeTeam, spadl.DefaultPitch())
	for r := range gs[0] {
		for i := range gs {
			if gs[0][r].TeamID == homeTeam {
				assert.Equal(t, gs[i][r], out[i][r])
			} else {
				assert.InDelta(t, spadl.FieldLength-gs[i][r].X, out[i][r].X, 1e-9)
			}
		}
	}
}

func TestPlayLeftToRightFollowsCurrentTeam(t *testing.T) {
	actions := model.Actions{
		{GameID: 1, PeriodID: 1, ActionID: 0, TeamID: homeTeam, X: 10},
		{GameID: 1, PeriodID: 1, ActionID: 1, TeamID: awayTeam, X: 30},
	}
	gs := buildStates(t, actions, 1)

	out := feature.PlayLeftToRight(gs, homeTeam, spadl.DefaultPitch())

	// home row: both lags untouched
	assert.Equal(t, 10.0, out[0][0].X)
	assert.Equal(t, 10.0, out[1][0].X)
	// away row: the home-team predecessor is mirrored with it
	assert.Equal(t, 75.0, out[0][1].X)
	assert.Equal(t, 95.0, out[1][1].X)
}

func TestPlayLeftToRightTwiceRestores(t *testing.T) {
	actions := sampleGame(t)
	gs := buildStates(t, actions, 1)
	pitch := spadl.DefaultPitch()

	twice := feature.PlayLeftToRight(feature.PlayLeftToRight(gs, homeTeam, pitch), homeTeam, pitch)
	for i := range gs {
		for r := range gs[i] {
			assert.InDelta(t, gs[i][r].X, twice[i][r].X, 1e-9)
			assert.InDelta(t, gs[i][r].Y, twice[i][r].Y, 1e-9)
			assert.InDelta(t, gs[i][r].DX, twice[i][r].DX, 1e-9)
			assert.InDelta(t, gs[i][r].DY, twice[i][r].DY, 1e-9)
		}
	}
}

func TestPlayLeftToRightInPlace(t *testing.T) {
	gs := model.GameStates{model.Actions{{TeamID: awayTeam, X: 0, Y: 0}}}
	out := feature.PlayLeftToRightInPlace(gs, homeTeam, spadl.DefaultPitch())
	assert.Equal(t, spadl.FieldLength, gs[0][0].X)
	assert.Equal(t, spadl.FieldWidth, gs[0][0].Y)
	assert.Equal(t, gs, out)
}
