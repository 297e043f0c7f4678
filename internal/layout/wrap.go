package layout

import (
	"strings"

	"github.com/ergosmind/mindstyle-server/internal/types"
)

// Metrics measures rendered text width. The layout engine wraps text with
// the same metrics the renderer draws with; wrapping against anything else
// would miscount line heights and miscalculate page breaks.
type Metrics interface {
	// TextWidth returns the width of s drawn in the given font, in points.
	TextWidth(f types.Font, s string) float64
}

// Wrap breaks s into the minimal number of lines such that no line exceeds
// maxWidth, breaking only at whitespace boundaries. A single word wider
// than maxWidth occupies a line by itself. Returns nil for an empty or
// all-whitespace string.
func Wrap(s string, maxWidth float64, f types.Font, m Metrics) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.TextWidth(f, candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
