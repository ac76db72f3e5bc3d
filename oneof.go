package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/adamluzsi/testcase/random"
)

// OneOf returns a generator that on every Next selects one of the received sub-generators
// with equal probability, advances it, and reports that sub-generator's value as its own.
// The index is drawn fresh on each Next, the previous advance's choice carries no preference.
// OneOf takes ownership of every received handle.
// The sub-generators are expected to model infinite sequences.
func OneOf[V any](gens []*Owned[V]) *Owned[V] {
	return OneOfFromSource(gens, random.CryptoSeed{})
}

// OneOfFromSource behaves like OneOf but draws the selected index from the received source.
func OneOfFromSource[V any](gens []*Owned[V], src rand.Source) *Owned[V] {
	return Own[V](newOneOfGen(gens, nil, src))
}

// OneOfWeighted returns a generator that selects sub-generator i
// with probability weights[i] / sum(weights) on every Next.
// Weights are relative magnitudes, not probabilities, they are normalized internally.
// A zero weight makes its sub-generator unreachable.
// One weight per sub-generator is required, each finite and non-negative,
// and their sum must be positive.
func OneOfWeighted[V any](gens []*Owned[V], weights []float64) *Owned[V] {
	return OneOfWeightedFromSource(gens, weights, random.CryptoSeed{})
}

// OneOfWeightedFromSource behaves like OneOfWeighted but draws the selected index from the received source.
func OneOfWeightedFromSource[V any](gens []*Owned[V], weights []float64, src rand.Source) *Owned[V] {
	if len(weights) != len(gens) {
		panic(fmt.Sprintf("generators: OneOfWeighted requires one weight per sub-generator, got %d weight(s) for %d generator(s)",
			len(weights), len(gens)))
	}
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			panic(fmt.Sprintf("generators: OneOfWeighted requires finite non-negative weights, got %v at index %d", w, i))
		}
		total += w
	}
	if !(0 < total) {
		panic("generators: OneOfWeighted requires a positive weight sum")
	}
	return Own[V](newOneOfGen(gens, weights, src))
}

func newOneOfGen[V any](gens []*Owned[V], weights []float64, src rand.Source) *oneOfGen[V] {
	if len(gens) == 0 {
		panic("generators: OneOf requires at least one sub-generator")
	}
	subs := make([]Generator[V], 0, len(gens))
	for _, g := range gens {
		subs = append(subs, g.Release())
	}
	g := &oneOfGen[V]{subs: subs, weights: weights, rnd: rand.New(src)}
	for _, w := range weights {
		g.total += w
	}
	g.Next()
	return g
}

type oneOfGen[V any] struct {
	subs    []Generator[V]
	weights []float64 // nil marks uniform selection
	total   float64
	rnd     *rand.Rand

	active int
}

func (g *oneOfGen[V]) Next() bool {
	g.active = g.pick()
	return g.subs[g.active].Next()
}

func (g *oneOfGen[V]) Value() V {
	return g.subs[g.active].Value()
}

func (g *oneOfGen[V]) pick() int {
	if g.weights == nil {
		return g.rnd.Intn(len(g.subs))
	}
	x := g.rnd.Float64() * g.total
	for i, w := range g.weights {
		if x < w {
			return i
		}
		x -= w
	}
	// float rounding may push x past the final band,
	// fall back to the last reachable sub-generator
	for i := len(g.weights) - 1; ; i-- {
		if 0 < g.weights[i] {
			return i
		}
	}
}
