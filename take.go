package generators

// Take limits a generator to at most n values, similarly how the coreutils "head" app works.
// The construction-ready value counts as the first element,
// so Next reports false after n values were answerable in total.
// Take takes ownership of the received handle; n must be positive.
func Take[V any](n int, g *Owned[V]) *Owned[V] {
	if n < 1 {
		panic("generators: Take requires a positive element count")
	}
	return Own[V](&takeGen[V]{sub: g.Release(), remaining: n - 1})
}

type takeGen[V any] struct {
	sub       Generator[V]
	remaining int
}

func (g *takeGen[V]) Next() bool {
	if g.remaining < 1 {
		return false
	}
	if !g.sub.Next() {
		g.remaining = 0
		return false
	}
	g.remaining--
	return true
}

func (g *takeGen[V]) Value() V {
	return g.sub.Value()
}
