package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceCoefficient(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "hello", "hello", 1},
		{"identical after whitespace removal", "new york", "newyork", 1},
		{"both empty", "", "", 1},
		{"single rune vs longer", "a", "ab", 0},
		{"empty vs word", "", "go", 0},
		{"one shared bigram", "night", "nacht", 0.25},
		{"no shared bigrams", "abc", "xyz", 0},
		{"case sensitive", "Paris", "paris", 0.75},
		{"repeated bigrams counted once per occurrence", "aaaa", "aa", 0.5},
		{"multibyte runes", "héllo", "héllo wörld", 2 * 4.0 / (5 + 10 - 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DiceCoefficient(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDiceCoefficient_Symmetric(t *testing.T) {
	pairs := [][2]string{{"golang", "go lang"}, {"concurrency", "currency"}, {"abc", "abd"}}
	for _, p := range pairs {
		assert.InDelta(t, DiceCoefficient(p[0], p[1]), DiceCoefficient(p[1], p[0]), 1e-9)
	}
}

func TestScaleScore(t *testing.T) {
	assert.Equal(t, 30, ScaleScore(1, 30))
	assert.Equal(t, 0, ScaleScore(0, 30))
	assert.Equal(t, 8, ScaleScore(0.25, 30), "7.5 rounds half up")
	assert.Equal(t, 23, ScaleScore(0.75, 30), "22.5 rounds half up")
	assert.Equal(t, 10, ScaleScore(1.0/3.0, 30))
}
