package generators_test

import (
	"fmt"

	"github.com/adamluzsi/generators"
	"github.com/adamluzsi/generators/alphabets"
)

func ExampleBetween() {
	digits := generators.Between[rune]('0', '9')

	for i := 0; i < 5; i++ {
		fmt.Println(string(digits.Value())) // some digit between 0 and 9
		digits.Next()
	}
}

func ExampleCycle() {
	colors := generators.Cycle(generators.Values("red", "green", "blue"))

	for i := 0; i < 5; i++ {
		fmt.Println(colors.Value())
		colors.Next()
	}
	// Output:
	// red
	// green
	// blue
	// red
	// green
}

func ExampleOneOfWeighted() {
	// approximately uniform over the union of the two value spaces,
	// the digit range being over-represented otherwise
	alphanumeric := generators.OneOfWeighted(
		generators.Gather(
			alphabets.ASCIIAlpha(),
			alphabets.Digit(),
		),
		[]float64{52, 10},
	)

	for i := 0; i < 5; i++ {
		fmt.Println(string(alphanumeric.Value())) // some ASCII letter or digit
		alphanumeric.Next()
	}
}

func ExampleChunk() {
	pairs := generators.Chunk(2, generators.Cycle(generators.Values(1, 2, 3)))

	fmt.Println(pairs.Value())
	pairs.Next()
	fmt.Println(pairs.Value())
	pairs.Next()
	fmt.Println(pairs.Value())
	// Output:
	// [1 2]
	// [3 1]
	// [2 3]
}
