package generators

// Values returns a finite generator over the received values, in argument order.
// It is ready at the first value, and its Next reports false once the last value is reached.
// At least one value is required.
func Values[V any](vs ...V) *Owned[V] {
	if len(vs) == 0 {
		panic("generators: Values requires at least one value")
	}
	return Own[V](&valuesGen[V]{values: vs})
}

type valuesGen[V any] struct {
	values []V
	index  int
}

func (g *valuesGen[V]) Next() bool {
	if len(g.values) <= g.index+1 {
		return false
	}
	g.index++
	return true
}

func (g *valuesGen[V]) Value() V {
	return g.values[g.index]
}
