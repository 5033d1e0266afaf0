package pipeline

import (
	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/label"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

// Result holds everything computed for one game
type Result struct {
	Features *model.FeatureSet
	Labels   []model.Label
}

// Process extracts the features of one game and computes its labels over
// the next horizon actions. Labels are computed on the unmirrored log.
func (e *Extractor) Process(actions model.Actions, homeTeamID int64, horizon int) (*Result, error) {
	fs, err := e.FeatureSet(actions, homeTeamID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Features: fs,
		Labels:   label.Compute(actions, horizon),
	}, nil
}

// ActionVectors pairs every action with its feature row for indexing
func ActionVectors(actions model.Actions, fs *model.FeatureSet) []*milvus.ActionVector {
	embeddings := Vectors(fs)
	out := make([]*milvus.ActionVector, 0, len(actions))
	for r := range actions {
		if r >= len(embeddings) {
			break
		}
		a := &actions[r]
		out = append(out, &milvus.ActionVector{
			GameID:    a.GameID,
			ActionID:  a.ActionID,
			TeamID:    a.TeamID,
			TypeID:    int32(a.TypeID),
			Elapsed:   float32(feature.ElapsedSeconds(a)),
			Embedding: embeddings[r],
		})
	}
	return out
}
