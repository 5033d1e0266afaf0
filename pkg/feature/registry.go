package feature

import (
	"fmt"
	"sort"

	"github.com/ljherron8/socceraction/pkg/spadl"
)

// Registry resolves transformer names, as used in configuration, to
// transformers bound to one vocabulary
type Registry struct {
	vocab        *spadl.Vocabulary
	transformers map[string]Transformer
}

// NewRegistry creates a registry holding every known transformer
func NewRegistry(v *spadl.Vocabulary) *Registry {
	r := &Registry{
		vocab:        v,
		transformers: make(map[string]Transformer),
	}
	for _, t := range []Transformer{
		ActionType(),
		ActionTypeOneHot(v),
		BodyPart(v),
		BodyPartDetailed(),
		BodyPartOneHot(v),
		BodyPartDetailedOneHot(v),
		Team(),
		Time(),
		TimeDelta(),
		Location(),
		Polar(v.Pitch),
		MovementPolar(),
		Direction(),
		GoalScore(),
	} {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a transformer under its name
func (r *Registry) Register(t Transformer) {
	r.transformers[t.Name()] = t
}

// Vocabulary returns the vocabulary the registry was built with
func (r *Registry) Vocabulary() *spadl.Vocabulary {
	return r.vocab
}

// Lookup returns the transformers for the given names, in order
func (r *Registry) Lookup(names ...string) ([]Transformer, error) {
	out := make([]Transformer, 0, len(names))
	for _, name := range names {
		t, ok := r.transformers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Names returns all registered names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transformers))
	for name := range r.transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultNames returns the transformer set of the atomic VAEP model
func DefaultNames() []string {
	return []string{
		"actiontype",
		"actiontype_onehot",
		"bodypart",
		"bodypart_onehot",
		"time",
		"team",
		"time_delta",
		"location",
		"polar",
		"movement_polar",
		"direction",
		"goalscore",
	}
}
