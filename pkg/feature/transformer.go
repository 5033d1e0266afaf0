package feature

import (
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

// Kind tags the role of a transformer
type Kind int

const (
	// KindAction transformers look at the most recent action of each game state only
	KindAction Kind = iota
	// KindLagged transformers apply a single-action function to every lag
	KindLagged
	// KindGameState transformers consume the full game state list
	KindGameState
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindLagged:
		return "lagged"
	case KindGameState:
		return "gamestate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ActionFunc computes features for every action of a log, one row per action
type ActionFunc func(actions model.Actions) (*Frame, error)

// GameStateFunc computes features from a full game state list
type GameStateFunc func(gs model.GameStates) (*Frame, error)

// Transformer maps a list of game states to a feature frame with one row
// per game state
type Transformer interface {
	Name() string
	Kind() Kind
	Transform(gs model.GameStates) (*Frame, error)
}

type actionTransformer struct {
	name string
	fn   ActionFunc
}

// Simple lifts a single-action function to a transformer that applies it to
// the most recent action of every game state and ignores the history
func Simple(name string, fn ActionFunc) Transformer {
	return &actionTransformer{name: name, fn: fn}
}

func (t *actionTransformer) Name() string { return t.name }
func (t *actionTransformer) Kind() Kind   { return KindAction }

func (t *actionTransformer) Transform(gs model.GameStates) (*Frame, error) {
	if len(gs) == 0 {
		return nil, ErrEmptyGameStates
	}
	return t.fn(gs[0])
}

type laggedTransformer struct {
	name string
	fn   ActionFunc
}

// Lagged lifts a single-action function to a transformer that applies it to
// each action of the game state and suffixes the columns with _a<lag>
func Lagged(name string, fn ActionFunc) Transformer {
	return &laggedTransformer{name: name, fn: fn}
}

func (t *laggedTransformer) Name() string { return t.name }
func (t *laggedTransformer) Kind() Kind   { return KindLagged }

func (t *laggedTransformer) Transform(gs model.GameStates) (*Frame, error) {
	if len(gs) == 0 {
		return nil, ErrEmptyGameStates
	}
	frames := make([]*Frame, 0, len(gs))
	for i, actions := range gs {
		f, err := t.fn(actions)
		if err != nil {
			return nil, err
		}
		suffix := fmt.Sprintf("_a%d", i)
		frames = append(frames, f.renamed(func(c string) string { return c + suffix }))
	}
	return Concat(frames...)
}

type gameStateTransformer struct {
	name string
	fn   GameStateFunc
}

// GameState wraps a function that needs the full game state list
func GameState(name string, fn GameStateFunc) Transformer {
	return &gameStateTransformer{name: name, fn: fn}
}

func (t *gameStateTransformer) Name() string { return t.name }
func (t *gameStateTransformer) Kind() Kind   { return KindGameState }

func (t *gameStateTransformer) Transform(gs model.GameStates) (*Frame, error) {
	if len(gs) == 0 {
		return nil, ErrEmptyGameStates
	}
	return t.fn(gs)
}

// Compute runs every transformer over the game states and joins the results
// column-wise into the feature matrix
func Compute(gs model.GameStates, fs []Transformer) (*Frame, error) {
	frames := make([]*Frame, 0, len(fs))
	for _, t := range fs {
		f, err := t.Transform(gs)
		if err != nil {
			return nil, err
		}
		if f.Rows() != gs.Len() {
			return nil, fmt.Errorf("%s: %w: got %d rows for %d game states", t.Name(), ErrRowMismatch, f.Rows(), gs.Len())
		}
		frames = append(frames, f)
	}
	out, err := Concat(frames...)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		out = NewFrame(gs.Len())
	}
	return out, nil
}
