package generators

import "fmt"

// Chunk groups the values pulled from a generator into fixed-size ordered slices.
// Its current value is always a freshly built slice of exactly size elements,
// so collected chunks never alias each other.
// Chunk takes ownership of the received handle; size must be positive,
// and the sub-generator must be able to fill at least the first chunk.
// Next reports false once the sub-generator cannot fill a whole further chunk.
func Chunk[V any](size int, g *Owned[V]) *Owned[[]V] {
	if size < 1 {
		panic("generators: Chunk requires a positive chunk size")
	}
	c := &chunkGen[V]{sub: g.Release(), size: size}
	first := make([]V, 0, size)
	first = append(first, c.sub.Value())
	for len(first) < size {
		if !c.sub.Next() {
			panic(fmt.Sprintf("generators: Chunk of size %d exceeds what its sub-generator can produce", size))
		}
		first = append(first, c.sub.Value())
	}
	c.chunk = first
	return Own[[]V](c)
}

type chunkGen[V any] struct {
	sub  Generator[V]
	size int

	chunk []V
	done  bool
}

func (g *chunkGen[V]) Next() bool {
	if g.done {
		return false
	}
	next := make([]V, 0, g.size)
	for len(next) < g.size {
		if !g.sub.Next() {
			g.done = true
			return false
		}
		next = append(next, g.sub.Value())
	}
	g.chunk = next
	return true
}

func (g *chunkGen[V]) Value() []V {
	return g.chunk
}
