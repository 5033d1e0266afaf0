package milvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterExpr(t *testing.T) {
	shot := int32(11)
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"empty", Filter{}, ""},
		{"other games", Filter{ExcludeGameID: 7}, "game_id != 7"},
		{"type and team", Filter{TeamID: 3, TypeID: &shot}, "team_id == 3 && type_id == 11"},
		{"type zero is a real type", Filter{TypeID: new(int32)}, "type_id == 0"},
		{"clock range", Filter{MinElapsed: 60, MaxElapsed: 2700.5}, "elapsed >= 60 && elapsed <= 2700.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Expr())
		})
	}
}

func TestActionVectorKey(t *testing.T) {
	v := &ActionVector{GameID: 12, ActionID: 345}
	assert.Equal(t, "12:345", v.Key())
}
