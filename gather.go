package generators

// Gather builds an ordered collection out of the received generator handles as a single expression.
// Each handle is moved into the result, preserving argument order,
// and the argument handles are invalid afterwards.
// Gather exists because a slice of move-only handles cannot be built
// through a copy based literal without aliasing the owned implementations.
func Gather[V any](gens ...*Owned[V]) []*Owned[V] {
	if len(gens) == 0 {
		panic("generators: Gather requires at least one generator")
	}
	out := make([]*Owned[V], 0, len(gens))
	for _, g := range gens {
		out = append(out, Own(g.Release()))
	}
	return out
}
