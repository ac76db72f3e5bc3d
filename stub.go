package generators

// NewStub wraps a generator so tests can replace or observe parts of its behavior.
func NewStub[V any](g Generator[V]) *Stub[V] {
	return &Stub[V]{
		Generator: g,
		StubNext:  g.Next,
		StubValue: g.Value,
	}
}

type Stub[V any] struct {
	Generator Generator[V]
	StubNext  func() bool
	StubValue func() V
}

// wrapper

func (m *Stub[V]) Next() bool {
	return m.StubNext()
}

func (m *Stub[V]) Value() V {
	return m.StubValue()
}

// Reseting stubs

func (m *Stub[V]) ResetNext() {
	m.StubNext = m.Generator.Next
}

func (m *Stub[V]) ResetValue() {
	m.StubValue = m.Generator.Value
}
