package cv

import "strings"

// Education is one entry of the education section.
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Period      string `json:"period" yaml:"period"`
	Status      string `json:"status" yaml:"status"`
}

// Detail is the "period | status" line, skipping blanks.
func (e Education) Detail() string {
	return joinDetail(e.Period, e.Status)
}

// Certification is one entry of the certifications section. Hours is
// optional.
type Certification struct {
	Title  string `json:"title" yaml:"title"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Year   string `json:"year" yaml:"year"`
	Hours  string `json:"hours,omitempty" yaml:"hours,omitempty"`
}

// Detail is the "issuer | year | hours" line, skipping blanks.
func (c Certification) Detail() string {
	return joinDetail(c.Issuer, c.Year, c.Hours)
}

func joinDetail(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}

// DefaultEducation is the education history printed on the CV.
func DefaultEducation() []Education {
	return []Education{
		{
			Institution: "UNOPAR (Universidade Norte do Paraná)",
			Degree:      "Technologist - Development and System Analysis",
			Period:      "Current",
			Status:      "Pursuing the degree",
		},
		{
			Institution: "Instituto Federal de Educação, Ciência e Tecnologia da Bahia, Campus Irecê",
			Degree:      "Technologist - Development and System Analysis",
			Period:      "2016-2019",
			Status:      "Incomplete",
		},
		{
			Institution: "Fundação Bradesco, Irecê",
			Degree:      "High School",
			Period:      "2015",
			Status:      "Completed",
		},
	}
}

// DefaultCertifications is the certification list printed on the CV, most
// recent first.
func DefaultCertifications() []Certification {
	return []Certification{
		{Title: "NDG Linux Essentials English 0323 cga", Issuer: "Cisco Network Academy", Year: "2023", Hours: "70H"},
		{Title: "JavaScript Basic Certification", Issuer: "HackerRank", Year: "2022"},
		{Title: "Quality Assurance Developer Certification", Issuer: "Freecodecamp.org", Year: "2022", Hours: "300H"},
		{Title: "Bootcamp EDUZZ Full Stack Developer", Issuer: "Digital Innovation One", Year: "2021", Hours: "95H"},
		{Title: "Responsive Web Design", Issuer: "Freecodecamp.org", Year: "2021", Hours: "300H"},
		{Title: "GIT Essential Training", Issuer: "Linkedin Learning", Year: "2021", Hours: "3H"},
		{Title: "Become a Web Developer", Issuer: "Linkedin Learning", Year: "2021", Hours: "22H"},
	}
}
