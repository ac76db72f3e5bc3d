package generators_test

import (
	"testing"

	"github.com/adamluzsi/generators"
	"github.com/stretchr/testify/require"
)

func TestFunc_DrawsLazilyOnEveryAdvance(t *testing.T) {
	t.Parallel()

	var draws int
	g := generators.Func(func() int {
		draws++
		return draws
	})

	// one draw happens at construction so the generator is ready
	require.Equal(t, 1, g.Value())
	require.Equal(t, 1, g.Value())
	require.Equal(t, 1, draws)

	require.True(t, g.Next())
	require.Equal(t, 2, g.Value())
	require.Equal(t, 2, draws)
}

func TestFunc_NilDrawFunction_PanicSent(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "generators: Func requires a draw function", func() {
		generators.Func[int](nil)
	})
}
