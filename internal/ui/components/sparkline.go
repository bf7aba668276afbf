package components

import (
	"math"
	"strings"

	"mdjournal/internal/ui/theme"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// SparkRunes maps scores in [-1, 1] onto block glyphs, lowest first.
// Values outside the range are clamped.
func SparkRunes(scores []float64) string {
	var sb strings.Builder
	for _, v := range scores {
		sb.WriteRune(sparkBlocks[sparkIndex(v)])
	}
	return sb.String()
}

// Sparkline renders SparkRunes with each glyph colored by its sign.
func Sparkline(scores []float64) string {
	var sb strings.Builder
	for _, v := range scores {
		sb.WriteString(theme.Score(v).Render(string(sparkBlocks[sparkIndex(v)])))
	}
	return sb.String()
}

func sparkIndex(v float64) int {
	v = math.Max(-1, math.Min(1, v))
	top := len(sparkBlocks) - 1
	return int(math.Round((v + 1) / 2 * float64(top)))
}
