package portfolio

// Data is the complete content record backing both the page and the CV export.
// It is built once at startup and must be treated as read-only afterwards.
type Data struct {
	Personal         Profile          `yaml:"personal" json:"personal"`
	Introduction     Introduction     `yaml:"introduction" json:"introduction"`
	TechnicalProfile TechnicalProfile `yaml:"technicalProfile" json:"technicalProfile"`
	Projects         []Project        `yaml:"projects" json:"projects"`
	Contributions    []Contribution   `yaml:"contributions" json:"contributions"`
	Contact          ContactInfo      `yaml:"contact" json:"contact"`
	Navigation       []NavEntry       `yaml:"navigation" json:"navigation"`
}

// Profile represents personal information.
type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Email    string `yaml:"email" json:"email"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
}

// Introduction holds the summary paragraphs and the phrases emphasized inside them.
type Introduction struct {
	Summary    []string `yaml:"summary" json:"summary"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

// TechnicalProfile groups the three technical profile cards.
type TechnicalProfile struct {
	LanguageProficiency   LanguageProficiency   `yaml:"languageProficiency" json:"languageProficiency"`
	TechnicalDomains      TechnicalDomains      `yaml:"technicalDomains" json:"technicalDomains"`
	FullStackCapabilities FullStackCapabilities `yaml:"fullStackCapabilities" json:"fullStackCapabilities"`
}

// LanguageProficiency feeds the skill chart.
type LanguageProficiency struct {
	Title       string       `yaml:"title" json:"title"`
	Description string       `yaml:"description" json:"description"`
	Data        []SkillDatum `yaml:"data" json:"data"`
}

// SkillDatum is a relative weight, not a percentage.
type SkillDatum struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// TechnicalDomains lists areas of expertise.
type TechnicalDomains struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Domains     []Domain `yaml:"domains" json:"domains"`
}

// Domain is one area of expertise.
type Domain struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// FullStackCapabilities carries the capability sections, ordered frontend, backend, other.
type FullStackCapabilities struct {
	Title       string              `yaml:"title" json:"title"`
	Description string              `yaml:"description" json:"description"`
	Sections    []CapabilitySection `yaml:"sections" json:"sections"`
}

// CapabilitySection is a titled list of skills.
type CapabilitySection struct {
	Title  string   `yaml:"title" json:"title"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Project is a single portfolio project.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Role         string   `yaml:"role" json:"role"`
	Impact       string   `yaml:"impact" json:"impact"`
	GitHubURL    string   `yaml:"githubUrl" json:"githubUrl"`
	LiveURL      string   `yaml:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	Categories   []string `yaml:"categories" json:"categories"`
}

// HasLiveDemo reports whether the project links to a live deployment.
// A "#" placeholder counts as no link.
func (p Project) HasLiveDemo() (result bool) {
	result = p.LiveURL != "" && p.LiveURL != "#"
	return result
}

// InCategory reports whether the project is listed under the given tab.
func (p Project) InCategory(category string) (result bool) {
	for _, c := range p.Categories {
		if c == category {
			result = true
			return result
		}
	}
	return result
}

// ContactInfo is the contact section content.
type ContactInfo struct {
	Title                  string                 `yaml:"title" json:"title"`
	ProfessionalInquiries  ProfessionalInquiries  `yaml:"professionalInquiries" json:"professionalInquiries"`
	CollaborationInterests CollaborationInterests `yaml:"collaborationInterests" json:"collaborationInterests"`
}

// ProfessionalInquiries heads the email/social links column.
type ProfessionalInquiries struct {
	Title string `yaml:"title" json:"title"`
}

// CollaborationInterests lists the areas open for collaboration.
type CollaborationInterests struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Areas       []string `yaml:"areas" json:"areas"`
	Note        string   `yaml:"note" json:"note"`
}

// NavEntry is a header navigation link.
type NavEntry struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}
