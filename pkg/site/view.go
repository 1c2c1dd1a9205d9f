package site

import (
	"html/template"
	"math"
	"strings"

	"github.com/nivandosoares/portfolio/pkg/cv"
	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

type categoryTab struct {
	Name   string
	Label  string
	Active bool
}

func categoryTabs(active string) (tabs []categoryTab) {
	for _, name := range portfolio.Categories {
		tabs = append(tabs, categoryTab{
			Name:   name,
			Label:  strings.ToUpper(name[:1]) + name[1:],
			Active: name == active,
		})
	}
	return tabs
}

type projectList struct {
	Category string
	Tabs     []categoryTab
	Projects []portfolio.Project
}

type skillBadge struct {
	Name  string
	Level int
}

// skillBadges scales proficiency weights to percentages of the strongest.
func skillBadges(data []portfolio.SkillDatum) (badges []skillBadge) {
	var top float64
	for _, d := range data {
		top = max(top, d.Value)
	}
	for _, d := range data {
		level := 0
		if top > 0 {
			level = int(math.Round(d.Value / top * 100))
		}
		badges = append(badges, skillBadge{Name: d.Name, Level: level})
	}
	return badges
}

type pageView struct {
	Title          string
	Description    string
	Data           portfolio.Data
	Projects       projectList
	Skills         []skillBadge
	Experience     []cv.ExperienceEntry
	Education      []cv.Education
	Certifications []cv.Certification
	Exporting      cv.Notice
	ContactEnabled bool
	Year           int
}

func (s *Server) pageView() pageView {
	return pageView{
		Title:       s.data.Personal.Name + " - Portfolio",
		Description: s.data.Personal.Title,
		Data:        s.data,
		Projects: projectList{
			Category: "all",
			Tabs:     categoryTabs("all"),
			Projects: s.data.ProjectsIn("all"),
		},
		Skills:         skillBadges(s.data.TechnicalProfile.LanguageProficiency.Data),
		Experience:     cv.Experience(s.data.Projects),
		Education:      s.exporter.EducationHistory(),
		Certifications: cv.DefaultCertifications(),
		Exporting:      cv.Started(),
		ContactEnabled: s.mailer != nil,
		Year:           s.now().Year(),
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"segments": func(intro portfolio.Introduction, paragraph string) []portfolio.Segment {
			return intro.Segments(paragraph)
		},
		"liveDemo": func(p portfolio.Project) bool {
			return p.HasLiveDemo()
		},
		"external": func(host string) string {
			if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
				return host
			}
			return "https://" + host
		},
	}
}
