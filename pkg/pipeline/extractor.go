package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/metrics"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

// ErrEmptyGame is returned when a game has no actions
var ErrEmptyGame = errors.New("game has no actions")

// Extractor turns the action log of one game into its feature matrix
type Extractor struct {
	Vocabulary    *spadl.Vocabulary
	NbPrevActions int
	Transformers  []feature.Transformer
	LeftToRight   bool // mirror away-team actions before extraction
	Build         gamestate.Func

	metrics *metrics.Pipeline
	logger  zerolog.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithMetrics records extraction metrics
func WithMetrics(m *metrics.Pipeline) Option {
	return func(e *Extractor) { e.metrics = m }
}

// WithLogger sets the extractor logger
func WithLogger(l zerolog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// WithLeftToRight toggles playing direction normalization
func WithLeftToRight(enabled bool) Option {
	return func(e *Extractor) { e.LeftToRight = enabled }
}

// WithBuilder replaces the game state builder
func WithBuilder(build gamestate.Func) Option {
	return func(e *Extractor) { e.Build = build }
}

// NewExtractor creates a new feature extractor
func NewExtractor(v *spadl.Vocabulary, nbPrevActions int, fs []feature.Transformer, opts ...Option) *Extractor {
	e := &Extractor{
		Vocabulary:    v,
		NbPrevActions: nbPrevActions,
		Transformers:  fs,
		LeftToRight:   true,
		Build:         gamestate.Build,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Columns returns the names of the columns Extract produces
func (e *Extractor) Columns() ([]string, error) {
	cols, err := feature.ColumnNames(e.Transformers, e.NbPrevActions, e.Build)
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.FeatureColumns.Set(float64(len(cols)))
	}
	return cols, nil
}

// Extract computes the feature matrix of one game. homeTeamID is the team
// whose playing direction is kept when LeftToRight is set.
func (e *Extractor) Extract(actions model.Actions, homeTeamID int64) (*feature.Frame, error) {
	if len(actions) == 0 {
		return nil, ErrEmptyGame
	}
	start := time.Now()

	gs, err := e.Build(actions, e.NbPrevActions)
	if err != nil {
		e.fail("gamestates")
		return nil, fmt.Errorf("failed to build game states: %w", err)
	}
	if e.LeftToRight {
		gs = feature.PlayLeftToRight(gs, homeTeamID, e.Vocabulary.Pitch)
	}

	frame, err := feature.Compute(gs, e.Transformers)
	if err != nil {
		e.fail("transform")
		return nil, fmt.Errorf("failed to compute features for game %d: %w", actions[0].GameID, err)
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.GamesProcessed.Inc()
		e.metrics.ActionsProcessed.Add(float64(frame.Rows()))
		e.metrics.ExtractionDuration.Observe(elapsed.Seconds())
	}
	e.logger.Debug().
		Int64("game_id", actions[0].GameID).
		Int("rows", frame.Rows()).
		Int("columns", len(frame.Columns())).
		Dur("elapsed", elapsed).
		Msg("Extracted features")

	return frame, nil
}

// FeatureSet extracts the features of one game in storable form
func (e *Extractor) FeatureSet(actions model.Actions, homeTeamID int64) (*model.FeatureSet, error) {
	frame, err := e.Extract(actions, homeTeamID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(actions))
	for r := range actions {
		ids[r] = actions[r].ActionID
	}
	return &model.FeatureSet{
		GameID:    actions[0].GameID,
		ActionIDs: ids,
		Columns:   frame.Columns(),
		Rows:      frame.Matrix(),
	}, nil
}

// Vectors converts the rows of a feature set into embeddings
func Vectors(fs *model.FeatureSet) []model.Embedding {
	out := make([]model.Embedding, len(fs.Rows))
	for r, row := range fs.Rows {
		out[r] = model.FromFloat64(row)
	}
	return out
}

func (e *Extractor) fail(stage string) {
	if e.metrics != nil {
		e.metrics.ExtractionFailures.WithLabelValues(stage).Inc()
	}
}
