package generators_test

import (
	"testing"

	"github.com/adamluzsi/generators"
	"github.com/stretchr/testify/require"
)

func TestValues_ReadyAtTheFirstValue_IteratesInArgumentOrder(t *testing.T) {
	t.Parallel()

	g := generators.Values(42, 4, 2)

	require.Equal(t, 42, g.Value())
	require.True(t, g.Next())
	require.Equal(t, 4, g.Value())
	require.True(t, g.Next())
	require.Equal(t, 2, g.Value())
	require.False(t, g.Next())
	// the current value stays answerable after exhaustion
	require.Equal(t, 2, g.Value())
}

func TestValues_SingleValue_ExhaustsAfterIt(t *testing.T) {
	t.Parallel()

	g := generators.Values("the answer")

	require.Equal(t, "the answer", g.Value())
	require.False(t, g.Next())
}

func TestValues_NoValueGiven_PanicSent(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "generators: Values requires at least one value", func() {
		generators.Values[int]()
	})
}
