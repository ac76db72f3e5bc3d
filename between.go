package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/adamluzsi/testcase/random"
)

// Integer is the constraint for value types the bounded range generator can draw.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Between returns a generator that draws a fresh value uniformly
// from the inclusive [lower, upper] range on every Next.
// When lower == upper the distribution collapses to a single point
// and the generator yields a constant infinite sequence.
// The random engine is seeded from system entropy and private to the returned instance.
func Between[V Integer](lower, upper V) *Owned[V] {
	return BetweenFromSource(lower, upper, random.CryptoSeed{})
}

// BetweenFromSource behaves like Between but draws from the received source,
// which allows reproducing a generation within a run by seeding explicitly.
func BetweenFromSource[V Integer](lower, upper V, src rand.Source) *Owned[V] {
	if upper < lower {
		panic(fmt.Sprintf("generators: Between requires lower <= upper, got [%v, %v]", lower, upper))
	}
	g := &betweenGen[V]{
		lower: lower,
		span:  uint64(upper) - uint64(lower) + 1, // 0 stands for the full 64 bit range
		rnd:   rand.New(src),
	}
	g.Next()
	return Own[V](g)
}

type betweenGen[V Integer] struct {
	lower V
	span  uint64
	rnd   *rand.Rand

	value V
}

func (g *betweenGen[V]) Next() bool {
	g.value = g.lower + V(g.draw())
	return true
}

func (g *betweenGen[V]) Value() V {
	return g.value
}

func (g *betweenGen[V]) draw() uint64 {
	if g.span == 0 {
		return g.rnd.Uint64()
	}
	// rejection sampling keeps the inclusive range free of modulo bias
	limit := math.MaxUint64 - math.MaxUint64%g.span
	for {
		if v := g.rnd.Uint64(); v < limit {
			return v % g.span
		}
	}
}
