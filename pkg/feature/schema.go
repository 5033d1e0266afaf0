package feature

import (
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/model"
)

// number of synthetic actions used to infer the output schema
const dummyRows = 10

// dummyName fills the name columns of the synthetic actions; it is how a
// float zero reads once converted to a string.
const dummyName = "0.0"

// ColumnNames returns the names of the columns the transformers produce on
// game states of the given depth, in output order. It runs the transformers
// on a synthetic, zero-valued action log built through build (gamestate.Build
// when nil), so no real data is needed.
func ColumnNames(fs []Transformer, nbPrevActions int, build gamestate.Func) ([]string, error) {
	if build == nil {
		build = gamestate.Build
	}
	gs, err := build(dummyActions(), nbPrevActions)
	if err != nil {
		return nil, err
	}
	f, err := Compute(gs, fs)
	if err != nil {
		return nil, err
	}
	return f.Columns(), nil
}

// dummyActions returns a zeroed action log whose name columns hold the
// string form of zero
func dummyActions() model.Actions {
	actions := make(model.Actions, dummyRows)
	for i := range actions {
		actions[i] = model.Action{
			OriginalEventID: dummyName,
			TypeName:        dummyName,
			BodyPartName:    dummyName,
		}
	}
	return actions
}
