package sampler

import "golang.org/x/exp/rand"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed seeds the generator's pseudorandom source, making output
// deterministic for a given cohort spec.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = rand.NewSource(seed)
	}
}

// WithSource injects a pseudorandom source directly.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}
