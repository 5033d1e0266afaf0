package milvus

import (
	"fmt"
	"strings"
)

// Filter restricts a similarity search on the scalar fields of the
// collection. Zero values disable a condition.
type Filter struct {
	ExcludeGameID int64
	TeamID        int64
	TypeID        *int32
	MinElapsed    float32
	MaxElapsed    float32
}

// Expr renders the filter as a Milvus boolean expression
func (f Filter) Expr() string {
	var conds []string
	if f.ExcludeGameID != 0 {
		conds = append(conds, fmt.Sprintf("game_id != %d", f.ExcludeGameID))
	}
	if f.TeamID != 0 {
		conds = append(conds, fmt.Sprintf("team_id == %d", f.TeamID))
	}
	if f.TypeID != nil {
		conds = append(conds, fmt.Sprintf("type_id == %d", *f.TypeID))
	}
	if f.MinElapsed > 0 {
		conds = append(conds, fmt.Sprintf("elapsed >= %g", f.MinElapsed))
	}
	if f.MaxElapsed > 0 {
		conds = append(conds, fmt.Sprintf("elapsed <= %g", f.MaxElapsed))
	}
	return strings.Join(conds, " && ")
}
