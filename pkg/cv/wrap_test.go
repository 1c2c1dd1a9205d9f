package cv

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{name: "empty", text: "", width: 10, want: nil},
		{name: "whitespace only", text: "   ", width: 10, want: nil},
		{name: "fits", text: "short line", width: 20, want: []string{"short line"}},
		{name: "breaks between words", text: "one two three four", width: 9, want: []string{"one two", "three", "four"}},
		{name: "collapses spaces", text: "a   b\n c", width: 10, want: []string{"a b c"}},
		{name: "splits long word", text: "abcdefghij xy", width: 4, want: []string{"abcd", "efgh", "ij", "xy"}},
		{name: "multibyte runes", text: "ação ção", width: 4, want: []string{"ação", "ção"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(runeWidth, tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, runeWidth(line), tt.width)
			}
		})
	}
}

func TestWrapTextNarrowerThanOneRune(t *testing.T) {
	got := wrapText(runeWidth, "abc", 0.5)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
