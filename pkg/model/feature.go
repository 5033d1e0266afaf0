package model

// FeatureValue is one cell of a feature matrix in long form
type FeatureValue struct {
	GameID   int64   `json:"game_id"`
	ActionID int64   `json:"action_id"`
	Feature  string  `json:"feature"`
	Value    float64 `json:"value"`
}

// FeatureSet is the feature matrix of one game, row-aligned with its actions
type FeatureSet struct {
	GameID    int64       `json:"game_id"`
	ActionIDs []int64     `json:"action_ids"`
	Columns   []string    `json:"columns"`
	Rows      [][]float64 `json:"rows"`
}

// Values flattens the set into long-form cells
func (fs *FeatureSet) Values() []FeatureValue {
	out := make([]FeatureValue, 0, len(fs.Rows)*len(fs.Columns))
	for r, row := range fs.Rows {
		for c, v := range row {
			out = append(out, FeatureValue{
				GameID:   fs.GameID,
				ActionID: fs.ActionIDs[r],
				Feature:  fs.Columns[c],
				Value:    v,
			})
		}
	}
	return out
}

// Embedding is a float32 feature vector used for similarity search
type Embedding []float32

// Dim returns the dimension of the embedding
func (e Embedding) Dim() int {
	return len(e)
}

// FromFloat64 creates an Embedding from a float64 slice
func FromFloat64(data []float64) Embedding {
	result := make(Embedding, len(data))
	for i, v := range data {
		result[i] = float32(v)
	}
	return result
}

// Label holds the forward-looking VAEP labels of one action
type Label struct {
	GameID   int64 `json:"game_id"`
	ActionID int64 `json:"action_id"`
	Scores   bool  `json:"scores"`
	Concedes bool  `json:"concedes"`
}
