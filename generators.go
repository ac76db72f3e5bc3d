/*	Package generators provide a lazy, pull based generator-combinator framework
	for synthesizing randomized and structured test inputs.

	Summary

	A generator goal is to let a test describe "a sequence of values satisfying a shape"
	without materializing the whole sequence ahead of time.
	Leaf generators compute values directly, for example from a uniform random distribution,
	while combinators own one or more sub-generators and derive their output from theirs.
	Because combinators satisfy the same protocol as leaves, composition nests arbitrarily.

	Every generator in this package is ready at construction:
	Value answers the current element before the first Next call,
	and Next is the only way to move on to the following element.
	Leaves and combinators model infinite sequences and their Next always reports true;
	false is reserved for the finite adapters (Values, Take, Chunk) upon exhaustion.

	Ownership

	Generator implementations may hold random engine state that must not be shared,
	so they are passed around exclusively through the move-only Owned handle.
	Combinators take their sub-generators by releasing the handle's implementation,
	after which the original handle is no longer usable.
*/
package generators

// Generator define a pull based, lazily evaluated sequence of values.
// Clients repeatedly call Next and Value to consume the sequence
// without knowing how the values are being computed.
type Generator[V any] interface {
	// Next will ensure that Value returns the next element of the sequence when executed.
	// It reports false when the sequence is finite and exhausted.
	Next() bool
	// Value returns the current element of the sequence.
	// The action is repeatable without side effects,
	// and it is already answerable before the first Next call.
	Value() V
}
