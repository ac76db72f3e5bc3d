package generators

// Own takes exclusive ownership of a generator implementation
// and returns the move-only handle that represents it from now on.
// The handle forwards the generator protocol to the owned implementation,
// so wrapped generators compose the same way bare ones would.
func Own[V any](impl Generator[V]) *Owned[V] {
	if impl == nil {
		panic("generators: Own requires a non-nil generator implementation")
	}
	return &Owned[V]{impl: impl}
}

// Owned is a move-only handle that owns exactly one generator implementation.
// It exists so heterogeneous generator implementations can be stored and passed around
// behind one uniform handle without ever aliasing the underlying instance.
// Combinators accept sub-generators only through Owned and take them with Release,
// which invalidates the original handle.
type Owned[V any] struct {
	impl Generator[V]
}

// Release transfers the owned implementation out of the handle.
// The handle becomes invalid, any further use of it panics.
func (o *Owned[V]) Release() Generator[V] {
	impl := o.borrow()
	o.impl = nil
	return impl
}

func (o *Owned[V]) Next() bool {
	return o.borrow().Next()
}

func (o *Owned[V]) Value() V {
	return o.borrow().Value()
}

func (o *Owned[V]) borrow() Generator[V] {
	if o.impl == nil {
		panic("generators: use of a released generator handle")
	}
	return o.impl
}
