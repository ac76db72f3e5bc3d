// Package alphabets provide rune generators over named character classes.
//
// The composed classes are weighted by alphabet size,
// so the combined generator approximates a uniform distribution
// over the union of the member value spaces,
// instead of a uniform distribution over the choice of member class,
// which would over-represent the smaller classes.
package alphabets

import "github.com/adamluzsi/generators"

const (
	digitCount        = '9' - '0' + 1
	lowercaseCount    = 'z' - 'a' + 1
	uppercaseCount    = 'Z' - 'A' + 1
	alphaCount        = lowercaseCount + uppercaseCount
	alphanumericCount = alphaCount + digitCount
)

// Digit generates runes in ['0', '9'].
func Digit() *generators.Owned[rune] {
	return generators.Between[rune]('0', '9')
}

// ASCIILowercase generates runes in ['a', 'z'].
func ASCIILowercase() *generators.Owned[rune] {
	return generators.Between[rune]('a', 'z')
}

// ASCIIUppercase generates runes in ['A', 'Z'].
func ASCIIUppercase() *generators.Owned[rune] {
	return generators.Between[rune]('A', 'Z')
}

// ASCIIAlpha generates lowercase and uppercase ASCII letters.
func ASCIIAlpha() *generators.Owned[rune] {
	return generators.OneOf(generators.Gather(
		ASCIILowercase(),
		ASCIIUppercase(),
	))
}

// ASCIIAlphanumeric generates ASCII letters and digits.
func ASCIIAlphanumeric() *generators.Owned[rune] {
	return generators.OneOfWeighted(
		generators.Gather(ASCIIAlpha(), Digit()),
		[]float64{alphaCount, digitCount},
	)
}

// PortablePOSIXFilename generates runes of the portable POSIX file name character set,
// that is, ASCII letters and digits plus '.', '-' and '_'.
func PortablePOSIXFilename() *generators.Owned[rune] {
	return generators.OneOfWeighted(
		generators.Gather(
			ASCIIAlphanumeric(),
			generators.Between[rune]('.', '.'),
			generators.Between[rune]('-', '-'),
			generators.Between[rune]('_', '_'),
		),
		[]float64{alphanumericCount, 1, 1, 1},
	)
}
