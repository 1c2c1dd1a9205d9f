package portfolio

import "strings"

// Segment is a run of paragraph text, emphasized when Strong is set.
type Segment struct {
	Text   string
	Strong bool
}

// Segments splits a paragraph at every occurrence of any highlight phrase.
// When two phrases start at the same offset the longer one wins. A paragraph
// without highlights comes back as a single plain segment.
func (i Introduction) Segments(paragraph string) (segments []Segment) {
	rest := paragraph
	for rest != "" {
		at, phrase := i.nextHighlight(rest)
		if phrase == "" {
			segments = append(segments, Segment{Text: rest})
			break
		}
		if at > 0 {
			segments = append(segments, Segment{Text: rest[:at]})
		}
		segments = append(segments, Segment{Text: phrase, Strong: true})
		rest = rest[at+len(phrase):]
	}
	return segments
}

func (i Introduction) nextHighlight(s string) (at int, phrase string) {
	at = -1
	for _, h := range i.Highlights {
		if h == "" {
			continue
		}
		idx := strings.Index(s, h)
		if idx < 0 {
			continue
		}
		if at < 0 || idx < at || (idx == at && len(h) > len(phrase)) {
			at = idx
			phrase = h
		}
	}
	return at, phrase
}

// SummaryText joins the summary paragraphs into one block of text.
func (i Introduction) SummaryText() (result string) {
	result = strings.Join(i.Summary, " ")
	return result
}
