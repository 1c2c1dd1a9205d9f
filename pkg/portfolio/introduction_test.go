package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	intro := Introduction{Highlights: []string{"MyOS", "CHIP-8 Emulator", "Colaborar A+"}}

	tests := []struct {
		name      string
		paragraph string
		want      []Segment
	}{
		{
			name:      "no highlights present",
			paragraph: "Plain paragraph.",
			want:      []Segment{{Text: "Plain paragraph."}},
		},
		{
			name:      "highlights in text order, not list order",
			paragraph: "Built Colaborar A+, MyOS and a CHIP-8 Emulator.",
			want: []Segment{
				{Text: "Built "},
				{Text: "Colaborar A+", Strong: true},
				{Text: ", "},
				{Text: "MyOS", Strong: true},
				{Text: " and a "},
				{Text: "CHIP-8 Emulator", Strong: true},
				{Text: "."},
			},
		},
		{
			name:      "highlight at start and end",
			paragraph: "MyOS rocks MyOS",
			want: []Segment{
				{Text: "MyOS", Strong: true},
				{Text: " rocks "},
				{Text: "MyOS", Strong: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intro.Segments(tt.paragraph))
		})
	}
}

func TestSegmentsPrefersLongerPhrase(t *testing.T) {
	intro := Introduction{Highlights: []string{"CHIP-8", "CHIP-8 Emulator", ""}}
	got := intro.Segments("A CHIP-8 Emulator")
	assert.Equal(t, []Segment{{Text: "A "}, {Text: "CHIP-8 Emulator", Strong: true}}, got)
}

func TestSummaryText(t *testing.T) {
	intro := Introduction{Summary: []string{"First.", "Second."}}
	assert.Equal(t, "First. Second.", intro.SummaryText())
	assert.Equal(t, "", Introduction{}.SummaryText())
}
