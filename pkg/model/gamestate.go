package model

// GameState is one action followed by its predecessors, most recent first
type GameState []Action

// Current returns the action being valued
func (g GameState) Current() *Action {
	if len(g) == 0 {
		return nil
	}
	return &g[0]
}

// GameStates stores the game states of an action log column-wise.
// gs[i][r] is the action i steps before row r, so gs[0] is the log itself
// and row r's game state is gs[0][r], gs[1][r], ..., gs[k][r].
type GameStates []Actions

// Len returns the number of game states (rows)
func (gs GameStates) Len() int {
	if len(gs) == 0 {
		return 0
	}
	return len(gs[0])
}

// Depth returns the number of actions in each game state
func (gs GameStates) Depth() int {
	return len(gs)
}

// At returns the game state of row r
func (gs GameStates) At(r int) GameState {
	state := make(GameState, len(gs))
	for i, lag := range gs {
		state[i] = lag[r]
	}
	return state
}

// Clone returns a deep copy
func (gs GameStates) Clone() GameStates {
	out := make(GameStates, len(gs))
	for i, lag := range gs {
		out[i] = lag.Clone()
	}
	return out
}
