package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/pathlab/core"
)

// Sentinel errors for generation parameters.
var (
	// ErrNegativeVertexCount indicates Random was asked for n < 0 vertices.
	ErrNegativeVertexCount = errors.New("builder: vertex count must be non-negative")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: edge probability must be in [0, 1]")
)

// Probability domain bounds.
const (
	probMin = 0.0
	probMax = 1.0
)

// Default uniform weight range when WithWeightRange is not given.
const (
	defaultMinWeight = 1.0
	defaultMaxWeight = 10.0
)

// options aggregates the generation knobs; immutable once resolved.
type options struct {
	directed bool
	minW     float64
	maxW     float64
	seed     int64
	seeded   bool
}

// Option configures Random.
type Option func(*options)

// WithDirected selects directed (true) or undirected (false) output.
// Default is undirected, matching core.New.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithWeightRange sets the closed uniform range edge weights are drawn from.
// Inverted bounds are swapped, not rejected. Default is [1, 10].
func WithWeightRange(min, max float64) Option {
	return func(o *options) { o.minW, o.maxW = min, max }
}

// WithSeed fixes the RNG seed for reproducible generation.
// Without it every call uses a fresh time-derived seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// Random samples a graph over n vertices with independent edge probability p.
//
// Fails fast with ErrNegativeVertexCount or ErrInvalidProbability; otherwise
// the returned graph is exclusively owned by the caller.
//
// Complexity: O(n²) Bernoulli trials, O(n + E) space.
func Random(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrNegativeVertexCount)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("Random: p=%g: %w", p, ErrInvalidProbability)
	}

	o := options{minW: defaultMinWeight, maxW: defaultMaxWeight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minW > o.maxW {
		o.minW, o.maxW = o.maxW, o.minW // leniency: swap, never reject
	}

	seed := o.seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := core.New(n, core.WithDirected(o.directed))

	// Stable trial order: u ascending, v ascending. Undirected graphs draw
	// only u < v; AddEdge stores the mirror.
	for u := 0; u < n; u++ {
		vStart := 0
		if !o.directed {
			vStart = u + 1
		}
		for v := vStart; v < n; v++ {
			if u == v {
				continue
			}
			// Float64 can land exactly on 0, so p == 0 needs its own branch
			// to truly produce an empty edge set.
			if p > probMin && rng.Float64() <= p {
				w := o.minW + rng.Float64()*(o.maxW-o.minW)
				if err := g.AddEdge(u, v, w); err != nil {
					return nil, fmt.Errorf("Random: AddEdge(%d→%d, w=%g): %w", u, v, w, err)
				}
			}
		}
	}

	return g, nil
}
