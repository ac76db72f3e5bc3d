package generators

// Func enables you to create an infinite leaf generator with a lambda expression.
// Every Next stores a fresh draw, and one draw is made at construction
// so the generator is ready before the first Next call.
// Domain specific leaf generators are expected to be built on top of Func.
func Func[V any](draw func() V) *Owned[V] {
	if draw == nil {
		panic("generators: Func requires a draw function")
	}
	g := &funcGen[V]{draw: draw}
	g.Next()
	return Own[V](g)
}

type funcGen[V any] struct {
	draw func() V

	value V
}

func (g *funcGen[V]) Next() bool {
	g.value = g.draw()
	return true
}

func (g *funcGen[V]) Value() V {
	return g.value
}
