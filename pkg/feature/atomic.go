package feature

import (
	"math"

	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

// ActionTypeOneHot encodes the type of each action as one column per
// vocabulary entry, named actiontype_<type_name>
func ActionTypeOneHot(v *spadl.Vocabulary) Transformer {
	return Simple("actiontype_onehot", ActionTypeOneHotFunc(v))
}

// ActionTypeOneHotFunc is the single-action form of ActionTypeOneHot
func ActionTypeOneHotFunc(v *spadl.Vocabulary) ActionFunc {
	types := v.ActionTypes()
	return func(actions model.Actions) (*Frame, error) {
		f := NewFrame(len(actions))
		for typeID, typeName := range types {
			col := make([]float64, len(actions))
			for r := range actions {
				col[r] = boolToFloat(actions[r].TypeID == typeID)
			}
			if err := f.Add("actiontype_"+typeName, col); err != nil {
				return nil, err
			}
		}
		return f, nil
	}
}

// Location returns the x and y location of each action
func Location() Transformer {
	return Simple("location", LocationFunc)
}

// LocationFunc is the single-action form of Location
func LocationFunc(actions model.Actions) (*Frame, error) {
	xs := make([]float64, len(actions))
	ys := make([]float64, len(actions))
	for r := range actions {
		xs[r] = actions[r].X
		ys[r] = actions[r].Y
	}
	f := NewFrame(len(actions))
	if err := f.Add("x", xs); err != nil {
		return nil, err
	}
	if err := f.Add("y", ys); err != nil {
		return nil, err
	}
	return f, nil
}

// Polar returns the distance and angle of each action's location to the
// center of the opponent goal
func Polar(pitch spadl.Pitch) Transformer {
	return Simple("polar", PolarFunc(pitch))
}

// PolarFunc is the single-action form of Polar
func PolarFunc(pitch spadl.Pitch) ActionFunc {
	goalX, goalY := pitch.GoalCenter()
	return func(actions model.Actions) (*Frame, error) {
		dist := make([]float64, len(actions))
		angle := make([]float64, len(actions))
		for r := range actions {
			dx := math.Abs(goalX - actions[r].X)
			dy := math.Abs(goalY - actions[r].Y)
			dist[r] = math.Sqrt(dx*dx + dy*dy)
			angle[r] = finiteOrZero(math.Atan(dy / dx))
		}
		f := NewFrame(len(actions))
		if err := f.Add("dist_to_goal", dist); err != nil {
			return nil, err
		}
		if err := f.Add("angle_to_goal", angle); err != nil {
			return nil, err
		}
		return f, nil
	}
}

// MovementPolar returns the distance covered and direction of each action
func MovementPolar() Transformer {
	return Simple("movement_polar", MovementPolarFunc)
}

// MovementPolarFunc is the single-action form of MovementPolar
func MovementPolarFunc(actions model.Actions) (*Frame, error) {
	movD := make([]float64, len(actions))
	movAngle := make([]float64, len(actions))
	for r := range actions {
		dx, dy := actions[r].DX, actions[r].DY
		movD[r] = math.Sqrt(dx*dx + dy*dy)
		// horizontal moves are 0, including backwards ones atan2 puts at pi
		if dy != 0 {
			movAngle[r] = math.Atan2(dy, dx)
		}
	}
	f := NewFrame(len(actions))
	if err := f.Add("mov_d", movD); err != nil {
		return nil, err
	}
	if err := f.Add("mov_angle", movAngle); err != nil {
		return nil, err
	}
	return f, nil
}

// Direction returns the components of the unit vector of each action's
// displacement. Zero-length displacements are passed through unchanged.
func Direction() Transformer {
	return Simple("direction", DirectionFunc)
}

// DirectionFunc is the single-action form of Direction
func DirectionFunc(actions model.Actions) (*Frame, error) {
	ux := make([]float64, len(actions))
	uy := make([]float64, len(actions))
	for r := range actions {
		dx, dy := actions[r].DX, actions[r].DY
		ux[r], uy[r] = dx, dy
		if total := math.Sqrt(dx*dx + dy*dy); total > 0 {
			ux[r], uy[r] = dx/total, dy/total
		}
	}
	f := NewFrame(len(actions))
	if err := f.Add("dx", ux); err != nil {
		return nil, err
	}
	if err := f.Add("dy", uy); err != nil {
		return nil, err
	}
	return f, nil
}

// GoalScore returns the number of goals scored by the team performing each
// action and by its opponent before that action, and their difference.
//
// The game states must cover the complete, time-ordered action log of a
// single game: the team of the first action is the reference team.
func GoalScore() Transformer {
	return GameState("goalscore", GoalScoreFunc)
}

// GoalScoreFunc is the game state form of GoalScore
func GoalScoreFunc(gs model.GameStates) (*Frame, error) {
	actions := gs[0]
	n := len(actions)
	team := make([]float64, n)
	opponent := make([]float64, n)
	diff := make([]float64, n)

	if n > 0 {
		teamA := actions[0].TeamID
		var scoreA, scoreB float64
		for r := range actions {
			a := &actions[r]
			isA := a.TeamID == teamA
			if isA {
				team[r], opponent[r] = scoreA, scoreB
			} else {
				team[r], opponent[r] = scoreB, scoreA
			}
			diff[r] = team[r] - opponent[r]

			// counted from the next row on
			goal, own := a.IsGoal(), a.IsOwnGoal()
			if (goal && isA) || (own && !isA) {
				scoreA++
			}
			if (goal && !isA) || (own && isA) {
				scoreB++
			}
		}
	}

	f := NewFrame(n)
	if err := f.Add("goalscore_team", team); err != nil {
		return nil, err
	}
	if err := f.Add("goalscore_opponent", opponent); err != nil {
		return nil, err
	}
	if err := f.Add("goalscore_diff", diff); err != nil {
		return nil, err
	}
	return f, nil
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
