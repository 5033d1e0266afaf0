package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/gamestate"
	"github.com/ljherron8/socceraction/pkg/model"
	"github.com/ljherron8/socceraction/pkg/spadl"
)

func TestColumnNamesLocationIgnoresDepth(t *testing.T) {
	for k := 0; k <= 4; k++ {
		names, err := feature.ColumnNames([]feature.Transformer{feature.Location()}, k, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, names, "nb_prev_actions=%d", k)
	}
}

func TestColumnNamesLagged(t *testing.T) {
	names, err := feature.ColumnNames([]feature.Transformer{feature.ActionType()}, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"type_id_a0", "type_id_a1", "type_id_a2"}, names)
}

func TestColumnNamesDefaultSet(t *testing.T) {
	r := feature.NewRegistry(spadl.DefaultVocabulary())
	fs, err := r.Lookup(feature.DefaultNames()...)
	require.NoError(t, err)

	names, err := feature.ColumnNames(fs, 3, nil)
	require.NoError(t, err)
	assert.Len(t, names, 85)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate column %s", n)
		seen[n] = true
	}
	assert.Equal(t, "type_id_a0", names[0])
	assert.Equal(t, "goalscore_diff", names[len(names)-1])
}

func TestColumnNamesMatchRealData(t *testing.T) {
	r := feature.NewRegistry(spadl.DefaultVocabulary())
	fs, err := r.Lookup(feature.DefaultNames()...)
	require.NoError(t, err)

	names, err := feature.ColumnNames(fs, 2, nil)
	require.NoError(t, err)

	f, err := feature.Compute(buildStates(t, sampleGame(t), 2), fs)
	require.NoError(t, err)
	assert.Equal(t, f.Columns(), names)
}

func TestColumnNamesUsesBuilder(t *testing.T) {
	var got model.Actions
	var gotK int
	build := func(actions model.Actions, k int) (model.GameStates, error) {
		got, gotK = actions, k
		return gamestate.Build(actions, k)
	}

	_, err := feature.ColumnNames([]feature.Transformer{feature.Location()}, 4, build)
	require.NoError(t, err)
	assert.Equal(t, 4, gotK)
	require.Len(t, got, 10)
	for _, a := range got {
		assert.Zero(t, a.X)
		assert.Equal(t, "0.0", a.TypeName)
		assert.Equal(t, "0.0", a.BodyPartName)
		assert.Equal(t, "0.0", a.OriginalEventID)
	}
}

func TestColumnNamesBuilderError(t *testing.T) {
	_, err := feature.ColumnNames([]feature.Transformer{feature.Location()}, -1, nil)
	assert.ErrorIs(t, err, gamestate.ErrInvalidWindow)
}
