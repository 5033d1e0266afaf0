package feature

import (
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

// Seconds per regular half, used to lay periods end to end
const periodSeconds = 45 * 60

// ActionType returns the type id of each action in the game state
func ActionType() Transformer {
	return Lagged("actiontype", func(actions model.Actions) (*Frame, error) {
		ids := make([]float64, len(actions))
		for r := range actions {
			ids[r] = float64(actions[r].TypeID)
		}
		return singleColumn(len(actions), "type_id", ids)
	})
}

// BodyPart returns the body part id of each action in the game state, with
// foot_left and foot_right collapsed into foot
func BodyPart(v *spadl.Vocabulary) Transformer {
	footID, _ := v.BodyPartID("foot")
	return Lagged("bodypart", func(actions model.Actions) (*Frame, error) {
		ids := make([]float64, len(actions))
		for r := range actions {
			ids[r] = float64(actions[r].BodyPartID)
			if isFoot(actions[r].BodyPartName) {
				ids[r] = float64(footID)
			}
		}
		return singleColumn(len(actions), "bodypart_id", ids)
	})
}

// BodyPartDetailed returns the raw body part id of each action
func BodyPartDetailed() Transformer {
	return Lagged("bodypart_detailed", func(actions model.Actions) (*Frame, error) {
		ids := make([]float64, len(actions))
		for r := range actions {
			ids[r] = float64(actions[r].BodyPartID)
		}
		return singleColumn(len(actions), "bodypart_id", ids)
	})
}

// BodyPartOneHot one-hot encodes the body part of each action, folding
// foot_left/foot_right into foot and head/other into head/other
func BodyPartOneHot(v *spadl.Vocabulary) Transformer {
	parts := v.BodyParts()
	return Lagged("bodypart_onehot", func(actions model.Actions) (*Frame, error) {
		f := NewFrame(len(actions))
		for _, part := range parts {
			if part == "foot_left" || part == "foot_right" {
				continue
			}
			col := make([]float64, len(actions))
			for r := range actions {
				name := actions[r].BodyPartName
				var hit bool
				switch part {
				case "foot":
					hit = isFoot(name)
				case "head/other":
					hit = name == "head" || name == "other" || name == "head/other"
				default:
					hit = name == part
				}
				col[r] = boolToFloat(hit)
			}
			if err := f.Add("bodypart_"+part, col); err != nil {
				return nil, err
			}
		}
		return f, nil
	})
}

// BodyPartDetailedOneHot one-hot encodes the body part of each action over
// the full body part vocabulary
func BodyPartDetailedOneHot(v *spadl.Vocabulary) Transformer {
	parts := v.BodyParts()
	return Lagged("bodypart_detailed_onehot", func(actions model.Actions) (*Frame, error) {
		f := NewFrame(len(actions))
		for id, part := range parts {
			col := make([]float64, len(actions))
			for r := range actions {
				col[r] = boolToFloat(actions[r].BodyPartID == id)
			}
			if err := f.Add("bodypart_"+part, col); err != nil {
				return nil, err
			}
		}
		return f, nil
	})
}

// Team returns, for each previous action, whether it was performed by the
// team of the most recent action
func Team() Transformer {
	return GameState("team", func(gs model.GameStates) (*Frame, error) {
		a0 := gs[0]
		f := NewFrame(len(a0))
		for i, lag := range gs[1:] {
			col := make([]float64, len(a0))
			for r := range a0 {
				col[r] = boolToFloat(lag[r].TeamID == a0[r].TeamID)
			}
			if err := f.Add(fmt.Sprintf("team_%d", i+1), col); err != nil {
				return nil, err
			}
		}
		return f, nil
	})
}

// Time returns the period, the seconds since period start and the seconds
// since kick-off of each action
func Time() Transformer {
	return Lagged("time", func(actions model.Actions) (*Frame, error) {
		period := make([]float64, len(actions))
		secs := make([]float64, len(actions))
		overall := make([]float64, len(actions))
		for r := range actions {
			a := &actions[r]
			period[r] = float64(a.PeriodID)
			secs[r] = a.TimeSeconds
			overall[r] = ElapsedSeconds(a)
		}
		f := NewFrame(len(actions))
		for _, c := range []struct {
			name   string
			values []float64
		}{
			{"period_id", period},
			{"time_seconds", secs},
			{"time_seconds_overall", overall},
		} {
			if err := f.Add(c.name, c.values); err != nil {
				return nil, err
			}
		}
		return f, nil
	})
}

// TimeDelta returns the seconds elapsed between each previous action and the
// most recent one
func TimeDelta() Transformer {
	return GameState("time_delta", func(gs model.GameStates) (*Frame, error) {
		a0 := gs[0]
		f := NewFrame(len(a0))
		for i, lag := range gs[1:] {
			col := make([]float64, len(a0))
			for r := range a0 {
				col[r] = a0[r].TimeSeconds - lag[r].TimeSeconds
			}
			if err := f.Add(fmt.Sprintf("time_delta_%d", i+1), col); err != nil {
				return nil, err
			}
		}
		return f, nil
	})
}

// ElapsedSeconds returns the seconds since kick-off, counting every earlier
// period as a regular half
func ElapsedSeconds(a *model.Action) float64 {
	return float64(a.PeriodID-1)*periodSeconds + a.TimeSeconds
}

func isFoot(name string) bool {
	return name == "foot" || name == "foot_left" || name == "foot_right"
}

func singleColumn(rows int, name string, values []float64) (*Frame, error) {
	f := NewFrame(rows)
	if err := f.Add(name, values); err != nil {
		return nil, err
	}
	return f, nil
}
