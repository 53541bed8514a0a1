// Package extract pulls floating-point literals out of free-form text.
package extract

import (
	"regexp"
	"strconv"
)

// floatPattern matches an optional sign, a decimal form (digits with an
// optional fraction, a bare leading-dot fraction, or digits alone), and an
// optional exponent. The dotted alternatives come first so the longest
// form wins; a dangling exponent marker ("3e") is left behind as a
// separator.
var floatPattern = regexp.MustCompile(`[+-]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?`)

// Floats returns every floating-point literal in text, left to right.
// Commas, whitespace, brackets and other non-numeric characters separate
// matches and are never an error. Text with no literals yields nil.
func Floats(text string) []float64 {
	matches := floatPattern.FindAllString(text, -1)
	if matches == nil {
		return nil
	}
	values := make([]float64, len(matches))
	for i, m := range matches {
		// the pattern only emits strings ParseFloat accepts
		v, _ := strconv.ParseFloat(m, 64)
		values[i] = v
	}
	return values
}
