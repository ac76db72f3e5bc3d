package generators

// Cycle takes ownership of a finite generator and replays its exact sequence forever.
// For an underlying sequence s_1..s_n, the k-th value pulled from the cycle (1-indexed,
// the construction-ready value being the first) equals s_((k-1) mod n)+1, for any k.
//
// The sub-generator is traversed lazily and exactly once;
// the values observed during that first traversal are retained,
// and every later traversal is served from the retained sequence by index.
// This way the sub-generator never needs to support being copied or restarted.
func Cycle[V any](g *Owned[V]) *Owned[V] {
	sub := g.Release()
	return Own[V](&cycleGen[V]{
		sub:    sub,
		buffer: []V{sub.Value()},
	})
}

type cycleGen[V any] struct {
	sub    Generator[V] // nil once the first traversal ended
	buffer []V
	index  int
}

func (g *cycleGen[V]) Next() bool {
	if g.sub != nil {
		if g.sub.Next() {
			g.buffer = append(g.buffer, g.sub.Value())
			g.index++
			return true
		}
		g.sub = nil
	}
	g.index = (g.index + 1) % len(g.buffer)
	return true
}

func (g *cycleGen[V]) Value() V {
	return g.buffer[g.index]
}
