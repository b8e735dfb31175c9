package util

import (
	"math"
	"unicode"
)

// stripSpace removes every whitespace rune.
func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// DiceCoefficient returns the Sørensen–Dice coefficient of the character
// bigrams of a and b, in [0,1]. Whitespace is ignored and the comparison is
// case-sensitive; callers normalize case themselves.
func DiceCoefficient(a, b string) float64 {
	first := stripSpace(a)
	second := stripSpace(b)

	if string(first) == string(second) {
		return 1
	}
	if len(first) < 2 || len(second) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]int, len(first)-1)
	for i := 0; i < len(first)-1; i++ {
		bigrams[[2]rune{first[i], first[i+1]}]++
	}

	intersection := 0
	for i := 0; i < len(second)-1; i++ {
		bg := [2]rune{second[i], second[i+1]}
		if bigrams[bg] > 0 {
			bigrams[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(first)+len(second)-2)
}

// ScaleScore scales a [0,1] ratio to an integer in [0,max], rounding half up.
func ScaleScore(ratio float64, max int) int {
	return int(math.Floor(ratio*float64(max) + 0.5))
}
