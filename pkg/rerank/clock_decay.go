package rerank

import (
	"math"
	"sort"

	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

// ClockDecayConfig configures reranking by distance in match time
type ClockDecayConfig struct {
	Lambda float64 `mapstructure:"lambda"` // decay per minute of match-clock difference

	// Segment weights, used instead of the exponential when UseSegments is set
	UseSegments bool    `mapstructure:"use_segments"`
	NearMinutes float64 `mapstructure:"near_minutes"`
	MidMinutes  float64 `mapstructure:"mid_minutes"`
	NearWeight  float64 `mapstructure:"near_weight"`
	MidWeight   float64 `mapstructure:"mid_weight"`
	FarWeight   float64 `mapstructure:"far_weight"`
}

// DefaultClockDecayConfig returns a default configuration
func DefaultClockDecayConfig() ClockDecayConfig {
	return ClockDecayConfig{
		Lambda:      0.05,
		NearMinutes: 5,
		MidMinutes:  20,
		NearWeight:  1.0,
		MidWeight:   0.7,
		FarWeight:   0.4,
	}
}

// RankedResult extends SearchResult with the reranked score
type RankedResult struct {
	milvus.SearchResult
	Similarity  float64 // 1 / (1 + distance)
	ClockWeight float64
	FinalScore  float64
}

// Reranker reranks similar actions so that those at a similar stage of the
// match come first
type Reranker struct {
	config ClockDecayConfig
}

// NewReranker creates a new reranker with the given configuration
func NewReranker(config ClockDecayConfig) *Reranker {
	return &Reranker{config: config}
}

// Rerank scores each hit against the match time (seconds since kick-off) of
// the query action and sorts by final score, best first
func (r *Reranker) Rerank(results []milvus.SearchResult, elapsed float64) []RankedResult {
	ranked := make([]RankedResult, len(results))

	for i, result := range results {
		minutes := math.Abs(float64(result.Elapsed)-elapsed) / 60

		var weight float64
		if r.config.UseSegments {
			weight = r.segmentWeight(minutes)
		} else {
			weight = math.Exp(-r.config.Lambda * minutes)
		}

		sim := 1 / (1 + float64(result.Score))
		ranked[i] = RankedResult{
			SearchResult: result,
			Similarity:   sim,
			ClockWeight:  weight,
			FinalScore:   sim * weight,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	return ranked
}

func (r *Reranker) segmentWeight(minutes float64) float64 {
	switch {
	case minutes <= r.config.NearMinutes:
		return r.config.NearWeight
	case minutes <= r.config.MidMinutes:
		return r.config.MidWeight
	default:
		return r.config.FarWeight
	}
}

// TopN returns the top N results after reranking
func (r *Reranker) TopN(results []milvus.SearchResult, elapsed float64, n int) []RankedResult {
	ranked := r.Rerank(results, elapsed)
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}
