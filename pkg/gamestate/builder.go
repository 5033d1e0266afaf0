package gamestate

import (
	"errors"
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

// ErrInvalidWindow is returned for a negative number of previous actions
var ErrInvalidWindow = errors.New("invalid game state window")

// DefaultNbPrevActions is the number of predecessors kept per game state
const DefaultNbPrevActions = 3

// Func builds game states from an action log
type Func func(actions model.Actions, nbPrevActions int) (model.GameStates, error)

// Build converts an action log into game states holding each action and its
// nbPrevActions predecessors. Predecessors never cross a (game, period)
// boundary; missing ones are padded with the first action of the period.
func Build(actions model.Actions, nbPrevActions int) (model.GameStates, error) {
	if nbPrevActions < 0 {
		return nil, fmt.Errorf("%w: nb_prev_actions=%d", ErrInvalidWindow, nbPrevActions)
	}

	// index of the first action of each row's (game, period) group
	groupStart := make([]int, len(actions))
	for r := range actions {
		if r > 0 && samePeriod(&actions[r], &actions[r-1]) {
			groupStart[r] = groupStart[r-1]
		} else {
			groupStart[r] = r
		}
	}

	states := make(model.GameStates, nbPrevActions+1)
	states[0] = actions
	for i := 1; i <= nbPrevActions; i++ {
		lag := make(model.Actions, len(actions))
		for r := range actions {
			src := r - i
			if src < groupStart[r] {
				src = groupStart[r]
			}
			lag[r] = actions[src]
		}
		states[i] = lag
	}
	return states, nil
}

func samePeriod(a, b *model.Action) bool {
	return a.GameID == b.GameID && a.PeriodID == b.PeriodID
}

// Builder produces game states one action at a time from a stream.
// It is used by the NATS worker, which receives a game as an ordered stream
// of action batches, and agrees with Build row for row.
type Builder struct {
	NbPrevActions int

	buffer *RingBuffer
	first  model.Action // padding for the start of a period
	last   *model.Action
}

// NewBuilder creates a streaming builder
func NewBuilder(nbPrevActions int) (*Builder, error) {
	if nbPrevActions < 0 {
		return nil, fmt.Errorf("%w: nb_prev_actions=%d", ErrInvalidWindow, nbPrevActions)
	}
	return &Builder{
		NbPrevActions: nbPrevActions,
		buffer:        NewRingBuffer(nbPrevActions + 1),
	}, nil
}

// Push adds an action and returns its game state, most recent first.
// The buffer restarts whenever the game or period changes.
func (b *Builder) Push(a model.Action) model.GameState {
	if b.last != nil && !samePeriod(b.last, &a) {
		b.Reset()
	}
	if b.buffer.Size() == 0 {
		b.first = a
	}
	b.buffer.Push(a)
	b.last = &a

	state := make(model.GameState, b.buffer.Capacity())
	for i := range state {
		if prev := b.buffer.Recent(i); prev != nil {
			state[i] = *prev
		} else {
			state[i] = b.first
		}
	}
	return state
}

// Reset clears the builder state
func (b *Builder) Reset() {
	b.buffer.Clear()
	b.last = nil
}

// ProcessActions pushes a batch of actions and returns all game states
func (b *Builder) ProcessActions(actions model.Actions) []model.GameState {
	states := make([]model.GameState, 0, len(actions))
	for _, a := range actions {
		states = append(states, b.Push(a))
	}
	return states
}

// BuildStreaming is a Func that feeds the log through a Builder and lays the
// emitted states out like Build does.
func BuildStreaming(actions model.Actions, nbPrevActions int) (model.GameStates, error) {
	b, err := NewBuilder(nbPrevActions)
	if err != nil {
		return nil, err
	}
	states := make(model.GameStates, nbPrevActions+1)
	for i := range states {
		states[i] = make(model.Actions, len(actions))
	}
	for r, a := range actions {
		for i, prev := range b.Push(a) {
			states[i][r] = prev
		}
	}
	return states, nil
}
