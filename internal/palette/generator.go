package palette

import (
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/boxtint/internal/colour"
)

const (
	// DefaultMinDistance is the default RGB distance below which a candidate is redrawn.
	DefaultMinDistance = 200.0

	// DefaultRetries is how many replacement candidates are drawn for a too-close colour.
	DefaultRetries = 1
)

// Generator builds palettes of random colours that try to keep a minimum
// distance from each other. The constraint is best effort: after the retry
// budget is spent the last candidate is kept even if it is still too close.
type Generator struct {
	minDistance float64
	metric      colour.Metric
	retries     int
	rng         *rand.Rand
	logger      hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMinDistance sets the distance threshold.
func WithMinDistance(d float64) Option {
	return func(g *Generator) { g.minDistance = d }
}

// WithMetric sets the distance metric.
func WithMetric(m colour.Metric) Option {
	return func(g *Generator) { g.metric = m }
}

// WithRetries sets how many replacements are drawn before a candidate is accepted anyway.
func WithRetries(n int) Option {
	return func(g *Generator) { g.retries = n }
}

// WithSeed seeds the random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)) // #nosec G115 -- bit reinterpretation is intended
	}
}

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a Generator with the defaults overridden by opts.
// Without WithSeed or WithRand the generator is seeded randomly.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		minDistance: DefaultMinDistance,
		metric:      colour.MetricRGB,
		retries:     DefaultRetries,
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // #nosec G404 -- palette colours are not security sensitive
	}
	return g
}

// Stats describes how hard a Generate call had to work.
type Stats struct {
	// Retried counts entries whose first candidate was too close.
	Retried int
	// Violations counts entries accepted while still below the threshold.
	Violations int
}

// Generate returns count colours. The first is unconstrained; each later one
// is redrawn up to the retry budget while it sits closer than the minimum
// distance to any colour accepted so far.
func (g *Generator) Generate(count int) (*Palette, Stats, error) {
	var stats Stats

	if count < 1 {
		return nil, stats, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if g.minDistance < 0 {
		return nil, stats, fmt.Errorf("minimum distance must not be negative, got %g", g.minDistance)
	}
	if g.retries < 0 {
		return nil, stats, fmt.Errorf("retries must not be negative, got %d", g.retries)
	}

	accepted := make([]colour.RGB, 0, count)
	accepted = append(accepted, colour.Random(g.rng))

	for id := 2; id <= count; id++ {
		candidate := colour.Random(g.rng)
		nearest := g.metric.MinDistance(candidate, accepted)

		if nearest < g.minDistance {
			stats.Retried++
			for attempt := 0; attempt < g.retries && nearest < g.minDistance; attempt++ {
				candidate = colour.Random(g.rng)
				nearest = g.metric.MinDistance(candidate, accepted)
			}
			if nearest < g.minDistance {
				stats.Violations++
				g.logger.Trace("accepting colour below threshold", "id", id, "hex", candidate.Hex(), "distance", nearest)
			}
		}

		accepted = append(accepted, candidate)
	}

	p := &Palette{Entries: make([]Entry, len(accepted))}
	for i, c := range accepted {
		p.Entries[i] = NewEntry(i+1, c)
	}

	g.logger.Debug("generated palette", "count", count, "metric", g.metric,
		"min_distance", g.minDistance, "retried", stats.Retried, "violations", stats.Violations)

	return p, stats, nil
}
