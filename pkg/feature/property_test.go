package feature_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

// genActions generates a single-game log where each action gets a type id,
// a team and a location on the default pitch
func genActions(v *spadl.Vocabulary) gopter.Gen {
	nTypes := len(v.ActionTypes())
	return gen.SliceOf(gen.Struct(reflect.TypeOf(model.Action{}), map[string]gopter.Gen{
		"TypeID": gen.IntRange(0, nTypes-1),
		"TeamID": gen.OneConstOf(homeTeam, awayTeam),
		"X":      gen.Float64Range(0, spadl.FieldLength),
		"Y":      gen.Float64Range(0, spadl.FieldWidth),
		"DX":     gen.Float64Range(-30, 30),
		"DY":     gen.Float64Range(-30, 30),
	})).Map(func(in []model.Action) model.Actions {
		out := make(model.Actions, len(in))
		for r, a := range in {
			a.GameID = 1
			a.PeriodID = 1 + r*2/max(len(in), 1)
			a.ActionID = int64(r)
			a.TimeSeconds = float64(r)
			a.TypeName, _ = v.ActionTypeName(a.TypeID)
			out[r] = a
		}
		return out
	})
}

func TestOneHotProperties(t *testing.T) {
	v := spadl.DefaultVocabulary()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every one-hot row sums to one", prop.ForAll(
		func(actions model.Actions) bool {
			f, err := feature.ActionTypeOneHotFunc(v)(actions)
			if err != nil {
				return false
			}
			for r := range actions {
				var sum float64
				for _, x := range f.Row(r) {
					sum += x
				}
				if sum != 1 {
					return false
				}
			}
			return true
		},
		genActions(v),
	))

	properties.TestingRun(t)
}

func TestPlayLeftToRightProperties(t *testing.T) {
	v := spadl.DefaultVocabulary()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	properties.Property("mirroring twice restores the input", prop.ForAll(
		func(actions model.Actions, k int) bool {
			gs, err := gamestate.Build(actions, k)
			if err != nil {
				return false
			}
			twice := feature.PlayLeftToRight(feature.PlayLeftToRight(gs, homeTeam, v.Pitch), homeTeam, v.Pitch)
			for i := range gs {
				for r := range gs[i] {
					a, b := gs[i][r], twice[i][r]
					if !near(a.X, b.X) || !near(a.Y, b.Y) || !near(a.DX, b.DX) || !near(a.DY, b.DY) {
						return false
					}
				}
			}
			return true
		},
		genActions(v),
		gen.IntRange(0, 4),
	))

	properties.Property("mirroring leaves the input untouched", prop.ForAll(
		func(actions model.Actions) bool {
			gs, err := gamestate.Build(actions, 1)
			if err != nil {
				return false
			}
			before := gs.Clone()
			feature.PlayLeftToRight(gs, homeTeam, v.Pitch)
			for i := range gs {
				for r := range gs[i] {
					if gs[i][r] != before[i][r] {
						return false
					}
				}
			}
			return true
		},
		genActions(v),
	))

	properties.TestingRun(t)
}

func TestComputeProperties(t *testing.T) {
	v := spadl.DefaultVocabulary()
	r := feature.NewRegistry(v)
	fs, err := r.Lookup(feature.DefaultNames()...)
	if err != nil {
		t.Fatal(err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("feature matrix has one row per action", prop.ForAll(
		func(actions model.Actions, k int) bool {
			gs, err := gamestate.Build(actions, k)
			if err != nil {
				return false
			}
			f, err := feature.Compute(gs, fs)
			return err == nil && f.Rows() == len(actions)
		},
		genActions(v),
		gen.IntRange(0, 5),
	))

	properties.Property("column names match computed columns", prop.ForAll(
		func(actions model.Actions, k int) bool {
			if len(actions) == 0 {
				return true
			}
			gs, err := gamestate.Build(actions, k)
			if err != nil {
				return false
			}
			f, err := feature.Compute(gs, fs)
			if err != nil {
				return false
			}
			names, err := feature.ColumnNames(fs, k, nil)
			if err != nil || len(names) != len(f.Columns()) {
				return false
			}
			for i, n := range f.Columns() {
				if names[i] != n {
					return false
				}
			}
			return true
		},
		genActions(v),
		gen.IntRange(0, 5),
	))

	properties.Property("angles stay within bounds", prop.ForAll(
		func(actions model.Actions) bool {
			f, err := feature.PolarFunc(v.Pitch)(actions)
			if err != nil {
				return false
			}
			angles, _ := f.Column("angle_to_goal")
			for _, a := range angles {
				if a < 0 || a > math.Pi/2 {
					return false
				}
			}
			return true
		},
		genActions(v),
	))

	properties.TestingRun(t)
}
