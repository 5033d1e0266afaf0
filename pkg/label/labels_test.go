package label

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ljherron8/socceraction/pkg/model"
)

func TestScoresAndConcedes(t *testing.T) {
	actions := model.Actions{
		{ActionID: 0, TeamID: 1, TypeName: "pass"},
		{ActionID: 1, TeamID: 1, TypeName: "shot"},
		{ActionID: 2, TeamID: 1, TypeName: "goal"},
		{ActionID: 3, TeamID: 2, TypeName: "pass"},
		{ActionID: 4, TeamID: 2, TypeName: "owngoal"},
		{ActionID: 5, TeamID: 1, TypeName: "pass"},
	}

	assert.Equal(t, []bool{true, true, true, false, false, false}, Scores(actions, 3))
	assert.Equal(t, []bool{false, false, false, true, true, false}, Concedes(actions, 3))
}

func TestLookaheadHorizon(t *testing.T) {
	actions := model.Actions{
		{TeamID: 1, TypeName: "pass"},
		{TeamID: 1, TypeName: "pass"},
		{TeamID: 1, TypeName: "goal"},
	}
	assert.Equal(t, []bool{false, true, true}, Scores(actions, 2))
	// horizon below one still looks at the current action
	assert.Equal(t, []bool{false, false, true}, Scores(actions, 0))
}

func TestCompute(t *testing.T) {
	actions := model.Actions{
		{GameID: 7, ActionID: 10, TeamID: 1, TypeName: "pass"},
		{GameID: 7, ActionID: 11, TeamID: 2, TypeName: "goal"},
	}
	labels := Compute(actions, DefaultHorizon)
	assert.Equal(t, []model.Label{
		{GameID: 7, ActionID: 10, Scores: false, Concedes: true},
		{GameID: 7, ActionID: 11, Scores: true, Concedes: false},
	}, labels)

	assert.Empty(t, Compute(nil, DefaultHorizon))
}
