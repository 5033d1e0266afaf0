package feature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

const (
	homeTeam int64 = 100
	awayTeam int64 = 200
)

// sampleGame returns a short two-period game with a goal for each side and
// an own goal by the home team
func sampleGame(t *testing.T) model.Actions {
	t.Helper()
	v := spadl.DefaultVocabulary()
	act := func(id int64, period int, secs float64, team int64, typeName, part string, x, y, dx, dy float64) model.Action {
		typeID, ok := v.ActionTypeID(typeName)
		require.True(t, ok, typeName)
		partID, ok := v.BodyPartID(part)
		require.True(t, ok, part)
		return model.Action{
			GameID: 1, ActionID: id, PeriodID: period, TimeSeconds: secs,
			TeamID: team, PlayerID: team*10 + id,
			X: x, Y: y, DX: dx, DY: dy,
			TypeID: typeID, TypeName: typeName,
			BodyPartID: partID, BodyPartName: part,
		}
	}
	return model.Actions{
		act(0, 1, 0, homeTeam, "pass", "foot", 52.5, 34, 10, 0),
		act(1, 1, 2, homeTeam, "receival", "foot_left", 62.5, 34, 0, 0),
		act(2, 1, 5, homeTeam, "shot", "foot_right", 95, 30, 10, 4),
		act(3, 1, 6, homeTeam, "goal", "foot", 105, 34, 0, 0),
		act(4, 1, 60, awayTeam, "pass", "head", 52.5, 34, -5, 0),
		act(5, 2, 3, awayTeam, "shot", "foot", 90, 40, 15, -6),
		act(6, 2, 4, awayTeam, "goal", "foot", 105, 34, 0, 0),
		act(7, 2, 30, homeTeam, "clearance", "head", 10, 34, 0, 3),
		act(8, 2, 31, homeTeam, "owngoal", "head", 0, 34, 0, 0),
		act(9, 2, 90, awayTeam, "pass", "other", 52.5, 34, 3, 4),
	}
}

func buildStates(t *testing.T, actions model.Actions, k int) model.GameStates {
	t.Helper()
	gs, err := gamestate.Build(actions, k)
	require.NoError(t, err)
	return gs
}

func column(t *testing.T, f interface {
	Column(string) ([]float64, bool)
}, name string) []float64 {
	t.Helper()
	col, ok := f.Column(name)
	require.True(t, ok, "missing column %s", name)
	return col
}
