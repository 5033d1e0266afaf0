package model

import "strings"

// Action represents a single atomic-SPADL action: one point-in-time event
// with a start location and a displacement vector
type Action struct {
	GameID          int64   `json:"game_id"`
	OriginalEventID string  `json:"original_event_id"`
	ActionID        int64   `json:"action_id"`
	PeriodID        int     `json:"period_id"`
	TimeSeconds     float64 `json:"time_seconds"` // seconds since period start
	TeamID          int64   `json:"team_id"`
	PlayerID        int64   `json:"player_id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	DX              float64 `json:"dx"`
	DY              float64 `json:"dy"`
	TypeID          int     `json:"type_id"`
	TypeName        string  `json:"type_name"`
	BodyPartID      int     `json:"bodypart_id"`
	BodyPartName    string  `json:"bodypart_name"`
}

// Actions is the time-ordered action log of one game
type Actions []Action

// Clone returns a copy of the action log
func (a Actions) Clone() Actions {
	if a == nil {
		return nil
	}
	out := make(Actions, len(a))
	copy(out, a)
	return out
}

// GameIDs returns the distinct game ids in order of first appearance
func (a Actions) GameIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, act := range a {
		if _, ok := seen[act.GameID]; ok {
			continue
		}
		seen[act.GameID] = struct{}{}
		ids = append(ids, act.GameID)
	}
	return ids
}

// ByGame splits a multi-game log into per-game logs, preserving order
func (a Actions) ByGame() map[int64]Actions {
	games := make(map[int64]Actions)
	for _, act := range a {
		games[act.GameID] = append(games[act.GameID], act)
	}
	return games
}

// IsGoal returns true for a regular goal
func (a *Action) IsGoal() bool {
	return a.TypeName == "goal"
}

// IsOwnGoal returns true if the action is an own goal
func (a *Action) IsOwnGoal() bool {
	return strings.Contains(a.TypeName, "owngoal")
}

// Game identifies a game and the team whose playing direction is kept
type Game struct {
	GameID     int64 `json:"game_id"`
	HomeTeamID int64 `json:"home_team_id"`
}
