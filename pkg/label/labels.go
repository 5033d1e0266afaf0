package label

import (
	"github.com/ljherron8/socceraction/pkg/model"
)

// DefaultHorizon is the number of actions looked ahead, including the
// current one
const DefaultHorizon = 10

// Scores reports, per action, whether the team performing it scores within
// the next horizon actions. Own goals by the opponent count as scoring.
// Looking past the end of the log repeats the last action.
func Scores(actions model.Actions, horizon int) []bool {
	return lookahead(actions, horizon, func(cur, next *model.Action) bool {
		if next.TeamID == cur.TeamID {
			return next.IsGoal()
		}
		return next.IsOwnGoal()
	})
}

// Concedes reports, per action, whether the team performing it concedes
// within the next horizon actions
func Concedes(actions model.Actions, horizon int) []bool {
	return lookahead(actions, horizon, func(cur, next *model.Action) bool {
		if next.TeamID == cur.TeamID {
			return next.IsOwnGoal()
		}
		return next.IsGoal()
	})
}

// Compute returns both labels for every action of one game
func Compute(actions model.Actions, horizon int) []model.Label {
	scores := Scores(actions, horizon)
	concedes := Concedes(actions, horizon)
	labels := make([]model.Label, len(actions))
	for r := range actions {
		labels[r] = model.Label{
			GameID:   actions[r].GameID,
			ActionID: actions[r].ActionID,
			Scores:   scores[r],
			Concedes: concedes[r],
		}
	}
	return labels
}

func lookahead(actions model.Actions, horizon int, hit func(cur, next *model.Action) bool) []bool {
	if horizon < 1 {
		horizon = 1
	}
	out := make([]bool, len(actions))
	last := len(actions) - 1
	for r := range actions {
		for i := 0; i < horizon; i++ {
			j := r + i
			if j > last {
				j = last
			}
			if hit(&actions[r], &actions[j]) {
				out[r] = true
				break
			}
		}
	}
	return out
}
