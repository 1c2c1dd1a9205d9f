package portfolio

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ContributionKind tags which detail a Contribution carries.
type ContributionKind string

const (
	ContributionPlain      ContributionKind = "none"
	ContributionHighlights ContributionKind = "highlights"
	ContributionSections   ContributionKind = "sections"
)

// Contribution is a technical expertise card. It carries either a highlight
// list, a list of titled sections, or neither; Kind says which.
type Contribution struct {
	Title      string                `json:"title"`
	Content    string                `json:"content"`
	Kind       ContributionKind      `json:"kind"`
	Highlights *HighlightList        `json:"highlights,omitempty"`
	Sections   []ContributionSection `json:"sections,omitempty"`
}

// HighlightList is a titled list of named items.
type HighlightList struct {
	Title string          `yaml:"title" json:"title"`
	Items []HighlightItem `yaml:"items" json:"items"`
}

// HighlightItem is one named highlight, optionally linking to an upstream source.
type HighlightItem struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Link        *Link  `yaml:"link,omitempty" json:"link,omitempty"`
}

// Link is a labelled URL.
type Link struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
}

// ContributionSection is a titled sub-section with a description and bullet items.
type ContributionSection struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Items       []string `yaml:"items" json:"items"`
}

// NewHighlightContribution builds a contribution carrying a highlight list.
func NewHighlightContribution(title, content string, highlights HighlightList) (c Contribution) {
	c = Contribution{Title: title, Content: content, Kind: ContributionHighlights, Highlights: &highlights}
	return c
}

// NewSectionContribution builds a contribution carrying titled sections.
func NewSectionContribution(title, content string, sections []ContributionSection) (c Contribution) {
	c = Contribution{Title: title, Content: content, Kind: ContributionSections, Sections: sections}
	return c
}

// NewPlainContribution builds a contribution with body text only.
func NewPlainContribution(title, content string) (c Contribution) {
	c = Contribution{Title: title, Content: content, Kind: ContributionPlain}
	return c
}

// UnmarshalYAML derives Kind from which detail field is present. Unknown
// fields are rejected here too, since a custom unmarshaler does not inherit
// the outer decoder's KnownFields setting.
func (c *Contribution) UnmarshalYAML(value *yaml.Node) (err error) {
	var raw struct {
		Title      string                `yaml:"title"`
		Content    string                `yaml:"content"`
		Highlights *HighlightList        `yaml:"highlights"`
		Sections   []ContributionSection `yaml:"sections"`
	}
	err = decodeStrict(value, &raw)
	if err != nil {
		return err
	}

	switch {
	case raw.Highlights != nil && len(raw.Sections) > 0:
		err = errors.Errorf("contribution %q has both highlights and sections", raw.Title)
		return err
	case raw.Highlights != nil:
		*c = NewHighlightContribution(raw.Title, raw.Content, *raw.Highlights)
	case len(raw.Sections) > 0:
		*c = NewSectionContribution(raw.Title, raw.Content, raw.Sections)
	default:
		*c = NewPlainContribution(raw.Title, raw.Content)
	}
	return err
}

// decodeStrict decodes node into out, failing on fields out does not declare.
func decodeStrict(node *yaml.Node, out any) (err error) {
	raw, err := yaml.Marshal(node)
	if err != nil {
		err = errors.Wrap(err, "failed to re-encode contribution")
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	err = dec.Decode(out)
	if err != nil {
		err = errors.Wrapf(err, "contribution at line %d", node.Line)
		return err
	}
	return err
}
