package nats

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/ljherron8/socceraction/pkg/model"
)

// Subject constants
const (
	SubjectActionsExtract = "socceraction.actions.extract"
	SubjectFeaturesWrite  = "socceraction.features.write"
)

// ActionBatchMsg asks the worker to compute the features of one game
type ActionBatchMsg struct {
	BatchID string        `json:"batch_id"`
	Game    model.Game    `json:"game"`
	Actions model.Actions `json:"actions"`
}

// NewActionBatch creates an action batch with a fresh batch id
func NewActionBatch(game model.Game, actions model.Actions) *ActionBatchMsg {
	return &ActionBatchMsg{
		BatchID: uuid.NewString(),
		Game:    game,
		Actions: actions,
	}
}

// FeatureBatchMsg carries the computed features and labels of one game
type FeatureBatchMsg struct {
	BatchID  string            `json:"batch_id"`
	Features *model.FeatureSet `json:"features"`
	Labels   []model.Label     `json:"labels,omitempty"`
}

// Encode serializes a message to JSON bytes
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// DecodeActionBatch deserializes an ActionBatchMsg from JSON bytes
func DecodeActionBatch(data []byte) (*ActionBatchMsg, error) {
	var msg ActionBatchMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodeFeatureBatch deserializes a FeatureBatchMsg from JSON bytes
func DecodeFeatureBatch(data []byte) (*FeatureBatchMsg, error) {
	var msg FeatureBatchMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
