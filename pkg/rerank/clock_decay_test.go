package rerank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

func TestRerankPrefersSimilarMatchTime(t *testing.T) {
	r := NewReranker(DefaultClockDecayConfig())
	results := []milvus.SearchResult{
		{ActionID: 1, Score: 0.5, Elapsed: 4000},
		{ActionID: 2, Score: 0.5, Elapsed: 600},
	}

	ranked := r.Rerank(results, 620)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].ActionID)
	assert.InDelta(t, 1/1.5, ranked[0].Similarity, 1e-9)
	assert.InDelta(t, math.Exp(-0.05*20.0/60), ranked[0].ClockWeight, 1e-6)
	assert.Greater(t, ranked[0].FinalScore, ranked[1].FinalScore)
}

func TestRerankSegments(t *testing.T) {
	cfg := DefaultClockDecayConfig()
	cfg.UseSegments = true
	r := NewReranker(cfg)

	ranked := r.Rerank([]milvus.SearchResult{
		{ActionID: 1, Elapsed: 0},
		{ActionID: 2, Elapsed: 10 * 60},
		{ActionID: 3, Elapsed: 60 * 60},
	}, 0)

	weights := map[int64]float64{}
	for _, rr := range ranked {
		weights[rr.ActionID] = rr.ClockWeight
	}
	assert.Equal(t, cfg.NearWeight, weights[1])
	assert.Equal(t, cfg.MidWeight, weights[2])
	assert.Equal(t, cfg.FarWeight, weights[3])
}

func TestTopN(t *testing.T) {
	r := NewReranker(DefaultClockDecayConfig())
	results := []milvus.SearchResult{
		{ActionID: 1, Score: 3},
		{ActionID: 2, Score: 1},
		{ActionID: 3, Score: 2},
	}
	top := r.TopN(results, 0, 2)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ActionID)
	assert.Equal(t, int64(3), top[1].ActionID)

	assert.Len(t, r.TopN(results, 0, 10), 3)
}
