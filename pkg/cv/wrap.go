package cv

import "strings"

// wrapText greedily breaks text into lines no wider than width. Words wider
// than a whole line are split between runes.
func wrapText(measure func(string) float64, text string, width float64) (lines []string) {
	var line string
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		for measure(word) > width {
			head, tail := splitToFit(measure, word, width)
			lines = append(lines, head)
			word = tail
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitToFit returns the longest rune prefix of word that fits in width,
// never less than one rune.
func splitToFit(measure func(string) float64, word string, width float64) (head, tail string) {
	r := []rune(word)
	n := 1
	for n < len(r) && measure(string(r[:n+1])) <= width {
		n++
	}
	return string(r[:n]), string(r[n:])
}
