package vector

import (
	"strconv"

	"github.com/chewxy/math32"
)

// maxf returns a when a > b, otherwise b. Unlike the built-in max it does not
// propagate a NaN held by a.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns a when a < b, otherwise b.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// formatComponent renders f as the shortest decimal that round-trips to the
// same float32, without exponent notation.
func formatComponent(f float32) string {
	switch {
	case math32.IsInf(f, 1):
		return "inf"
	case math32.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
