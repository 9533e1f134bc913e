package components

import "strings"

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a row of block characters, scaled
// against the larger of the series maximum and ceiling. Passing the
// daily goal as ceiling keeps under-goal days visually short even
// when every day fell short.
func Sparkline(values []float64, ceiling float64) string {
	if len(values) == 0 {
		return ""
	}
	top := ceiling
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	if top <= 0 {
		return strings.Repeat(string(sparkRunes[0]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / top * float64(len(sparkRunes)-1))
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
