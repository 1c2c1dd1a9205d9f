package cv

import (
	"strings"

	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

const (
	// MaxExperienceEntries caps how many projects become experience entries.
	MaxExperienceEntries = 4
	// ExperiencePeriod is printed against every experience entry.
	ExperiencePeriod = "2022 - Present"
)

// ExperienceEntry is a project presented as professional experience.
type ExperienceEntry struct {
	Role         string
	Title        string
	Period       string
	Bullets      []string
	Technologies []string
	GitHubURL    string
	LiveURL      string
}

// Experience derives the experience section from the first projects.
func Experience(projects []portfolio.Project) (entries []ExperienceEntry) {
	if len(projects) > MaxExperienceEntries {
		projects = projects[:MaxExperienceEntries]
	}
	for _, p := range projects {
		entry := ExperienceEntry{
			Role:         p.Role,
			Title:        p.Title,
			Period:       ExperiencePeriod,
			Bullets:      Bullets(p.Description),
			Technologies: p.Technologies,
			GitHubURL:    p.GitHubURL,
		}
		if p.HasLiveDemo() {
			entry.LiveURL = p.LiveURL
		}
		entries = append(entries, entry)
	}
	return entries
}

// Bullets splits a description into sentences on ". ". Every bullet ends
// with exactly one period; empty sentences are dropped.
func Bullets(description string) (bullets []string) {
	for _, sentence := range strings.Split(description, ". ") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		bullets = append(bullets, sentence)
	}
	return bullets
}
