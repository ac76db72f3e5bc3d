package generators_test

import (
	"testing"

	"github.com/adamluzsi/generators"
)

// pull reads n values out of a ready generator,
// the current value counting as the first one.
func pull[V any](tb testing.TB, g generators.Generator[V], n int) []V {
	tb.Helper()
	vs := make([]V, 0, n)
	vs = append(vs, g.Value())
	for len(vs) < n {
		if !g.Next() {
			tb.Fatalf("generator exhausted after %d value(s), expected %d", len(vs), n)
		}
		vs = append(vs, g.Value())
	}
	return vs
}

// constantsOf builds one constant generator per received value, preserving order.
func constantsOf(vs ...int) []*generators.Owned[int] {
	gens := make([]*generators.Owned[int], 0, len(vs))
	for _, v := range vs {
		gens = append(gens, generators.Between(v, v))
	}
	return generators.Gather(gens...)
}
