package portfolio

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MinCapabilitySections is the number of capability sections the CV layout
// addresses by position: frontend, backend, other.
const MinCapabilitySections = 3

// Categories are the project tabs, in display order.
//
//nolint:gochecknoglobals // fixed tab list
var Categories = []string{"all", "web", "systems", "mobile", "desktop"}

//go:embed data.yaml
var defaultData []byte

// Default returns the built-in portfolio dataset.
func Default() (data Data, err error) {
	data, err = Parse(defaultData)
	if err != nil {
		err = errors.Wrap(err, "built-in portfolio data is invalid")
		return data, err
	}
	return data, err
}

// Load reads the portfolio from a YAML or JSON file. An empty path selects
// the built-in dataset.
func Load(path string) (data Data, err error) {
	if path == "" {
		data, err = Default()
		return data, err
	}

	var raw []byte
	raw, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read portfolio data: %s", path)
		return data, err
	}

	data, err = Parse(raw)
	if err != nil {
		err = errors.Wrapf(err, "failed to load portfolio data: %s", path)
		return data, err
	}
	return data, err
}

// Parse decodes and validates a portfolio document. Unknown fields are rejected.
func Parse(raw []byte) (data Data, err error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	err = dec.Decode(&data)
	if err != nil {
		err = errors.Wrap(err, "failed to parse portfolio data")
		return data, err
	}

	err = data.Validate()
	if err != nil {
		err = errors.Wrap(err, "portfolio validation failed")
		return data, err
	}
	return data, err
}

// Validate checks the invariants the page and the CV export rely on.
func (d *Data) Validate() (err error) {
	if d.Personal.Name == "" {
		err = errors.New("personal name is required")
		return err
	}

	sections := d.TechnicalProfile.FullStackCapabilities.Sections
	if len(sections) < MinCapabilitySections {
		err = errors.Errorf("expected at least %d capability sections (frontend, backend, other), got %d",
			MinCapabilitySections, len(sections))
		return err
	}

	for i, p := range d.Projects {
		if p.Title == "" {
			err = errors.Errorf("project at index %d missing title", i)
			return err
		}
	}

	for _, s := range d.TechnicalProfile.LanguageProficiency.Data {
		if s.Value < 0 {
			err = errors.Errorf("skill %s has negative value", s.Name)
			return err
		}
	}

	return err
}

// ProjectsIn returns the projects listed under a category tab, in dataset order.
func (d *Data) ProjectsIn(category string) (projects []Project) {
	projects = make([]Project, 0, len(d.Projects))
	for _, p := range d.Projects {
		if p.InCategory(category) {
			projects = append(projects, p)
		}
	}
	return projects
}

// IsCategory reports whether name is one of the project tabs.
func IsCategory(name string) (result bool) {
	for _, c := range Categories {
		if c == name {
			result = true
			return result
		}
	}
	return result
}
