package feature

import (
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

// PlayLeftToRight returns a copy of the game states in which every row whose
// most recent action belongs to a team other than homeTeamID is mirrored
// through the center of the pitch, in every lag. Each game state is then seen
// from the point of view of the team performing its current action.
// The input is left untouched.
func PlayLeftToRight(gs model.GameStates, homeTeamID int64, pitch spadl.Pitch) model.GameStates {
	out := gs.Clone()
	PlayLeftToRightInPlace(out, homeTeamID, pitch)
	return out
}

// PlayLeftToRightInPlace mirrors away-team rows directly in gs and returns
// it. Every slice sharing backing arrays with gs observes the change.
func PlayLeftToRightInPlace(gs model.GameStates, homeTeamID int64, pitch spadl.Pitch) model.GameStates {
	if len(gs) == 0 {
		return gs
	}
	for r := range gs[0] {
		if gs[0][r].TeamID == homeTeamID {
			continue
		}
		for i := range gs {
			mirror(&gs[i][r], pitch)
		}
	}
	return gs
}

func mirror(a *model.Action, pitch spadl.Pitch) {
	a.X = pitch.Length - a.X
	a.Y = pitch.Width - a.Y
	a.DX = -a.DX
	a.DY = -a.DY
}
