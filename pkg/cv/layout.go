package cv

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

// Page geometry and type scale, in millimetres and points.
const (
	margin           = 15.0
	bottomMargin     = 25.0
	columnGutter     = 10.0
	bulletIndent     = 3.0
	titleSize        = 16.0
	subtitleSize     = 12.0
	sectionSize      = 12.0
	subheadingSize   = 11.0
	institutionSize  = 10.0
	normalSize       = 9.0
	smallSize        = 8.0
	lineHeight       = 4.5
	sectionSpacing   = 5.0
	paragraphSpacing = 3.0
	bulletSpacing    = 3.5
	headerRuleGap    = 4.0
	headerHeight     = 2 * headerRuleGap
	footerNumberRise = 10.0
	footerDateRise   = 5.0
)

const (
	frontendHeading = "Frontend Development"
	backendHeading  = "Backend Development"
	otherHeading    = "Other Technical Domains"
)

type skillColumns struct {
	frontend portfolio.CapabilitySection
	backend  portfolio.CapabilitySection
	other    portfolio.CapabilitySection
}

func resolveSkillColumns(sections []portfolio.CapabilitySection) (cols skillColumns, err error) {
	if len(sections) < portfolio.MinCapabilitySections {
		err = errors.Errorf("need %d capability sections (frontend, backend, other), got %d",
			portfolio.MinCapabilitySections, len(sections))
		return cols, err
	}
	cols = skillColumns{frontend: sections[0], backend: sections[1], other: sections[2]}
	return cols, err
}

type document struct {
	profile   portfolio.Profile
	intro     portfolio.Introduction
	projects  []portfolio.Project
	skills    skillColumns
	education []Education
	certs     []Certification
	generated time.Time
}

// layout walks a single vertical cursor down the pages of a Surface.
type layout struct {
	s     Surface
	pageW float64
	pageH float64
	y     float64
}

// render draws doc onto s and returns the page count. The surface error is
// checked after every section.
func render(s Surface, doc document) (pages int, err error) {
	s.AddPage()
	l := &layout{s: s, y: margin}
	l.pageW, l.pageH = s.PageSize()

	steps := []struct {
		op   string
		draw func()
	}{
		{"header", func() { l.header(doc.profile) }},
		{"summary", func() { l.summary(doc.intro) }},
		{"experience", func() { l.experience(doc.projects) }},
		{"skills", func() { l.skills(doc.skills) }},
		{"education", func() { l.education(doc.education) }},
		{"certifications", func() { l.certifications(doc.certs) }},
		{"footer", func() { l.footers(doc.generated) }},
	}
	for _, step := range steps {
		step.draw()
		if err = s.Err(); err != nil {
			return 0, fail(step.op, err)
		}
	}

	pages = s.PageCount()
	return pages, err
}

func (l *layout) contentWidth() float64 {
	return l.pageW - 2*margin
}

func (l *layout) columnWidth() float64 {
	return l.contentWidth()/2 - columnGutter/2
}

func (l *layout) rightColumnX() float64 {
	return margin + l.columnWidth() + columnGutter
}

func (l *layout) limit() float64 {
	return l.pageH - bottomMargin
}

// ensure starts a new page when a block of height h would cross the bottom
// margin.
func (l *layout) ensure(h float64) {
	if l.y+h > l.limit() {
		l.s.AddPage()
		l.y = margin
	}
}

func (l *layout) sectionHeader(title string) {
	l.s.SetFont(Bold, sectionSize)
	l.s.Text(margin, l.y, title, AlignLeft)
	l.y += headerRuleGap
	l.s.SetDrawColor(100, 100, 100)
	l.s.Line(margin, l.y, l.pageW-margin, l.y)
	l.y += headerRuleGap
}

func (l *layout) wrap(text string, width float64) []string {
	return wrapText(l.s.TextWidth, text, width)
}

func (l *layout) header(p portfolio.Profile) {
	center := l.pageW / 2

	l.s.SetFont(Bold, titleSize)
	l.s.Text(center, l.y, p.Name, AlignCenter)
	l.y += lineHeight + 1

	if p.Title != "" {
		l.s.SetFont(Regular, subtitleSize)
		l.s.Text(center, l.y, p.Title, AlignCenter)
		l.y += lineHeight + 1
	}

	l.s.SetFont(Regular, normalSize)
	contacts := []struct{ label, value string }{
		{"Email", p.Email},
		{"GitHub", p.GitHub},
		{"LinkedIn", p.LinkedIn},
	}
	for _, c := range contacts {
		if c.value == "" {
			continue
		}
		l.s.Text(center, l.y, c.label+": "+c.value, AlignCenter)
		l.y += lineHeight
	}
	l.y += sectionSpacing
}

func (l *layout) summary(intro portfolio.Introduction) {
	l.ensure(headerHeight + lineHeight)
	l.sectionHeader("Professional Summary")

	l.s.SetFont(Regular, normalSize)
	for _, line := range l.wrap(intro.SummaryText(), l.contentWidth()) {
		l.ensure(lineHeight)
		l.s.Text(margin, l.y, line, AlignLeft)
		l.y += lineHeight
	}
	l.y += sectionSpacing
}

func (l *layout) experience(projects []portfolio.Project) {
	l.ensure(headerHeight + 2*lineHeight)
	l.sectionHeader("Professional Experience")

	entries := Experience(projects)
	for i, e := range entries {
		l.ensure(2*lineHeight + 1)

		l.s.SetFont(Bold, sectionSize)
		l.s.Text(margin, l.y, e.Role, AlignLeft)
		l.y += lineHeight

		l.s.SetFont(Italic, normalSize)
		l.s.Text(margin, l.y, e.Title, AlignLeft)
		l.s.SetFont(Regular, normalSize)
		l.s.Text(l.pageW-margin, l.y, e.Period, AlignRight)
		l.y += lineHeight + 1

		for _, bullet := range e.Bullets {
			l.s.SetFont(Regular, normalSize)
			lines := l.wrap("• "+bullet, l.contentWidth()-5)
			l.ensure(float64(len(lines)) * lineHeight)
			for _, line := range lines {
				l.s.Text(margin+bulletIndent, l.y, line, AlignLeft)
				l.y += lineHeight
			}
		}

		if i < len(entries)-1 {
			l.y += paragraphSpacing
		}
	}
	l.y += sectionSpacing
}

// skillColumn draws a sub-heading and its bullets from y and returns the
// cursor below the last bullet.
func (l *layout) skillColumn(x, y float64, heading string, skills []string) float64 {
	l.s.SetFont(Bold, subheadingSize)
	l.s.Text(x, y, heading, AlignLeft)
	y += lineHeight + 1

	l.s.SetFont(Regular, normalSize)
	for _, skill := range skills {
		l.s.Text(x+bulletIndent, y, "• "+skill, AlignLeft)
		y += bulletSpacing
	}
	return y
}

func (l *layout) skills(cols skillColumns) {
	rows := max(len(cols.frontend.Skills), len(cols.backend.Skills))
	l.ensure(headerHeight + lineHeight + 1 + float64(rows)*bulletSpacing)
	l.sectionHeader("Technical Skills")

	left := l.skillColumn(margin, l.y, frontendHeading, cols.frontend.Skills)
	right := l.skillColumn(l.rightColumnX(), l.y, backendHeading, cols.backend.Skills)
	l.y = max(left, right) + paragraphSpacing

	l.ensure(lineHeight + 1 + bulletSpacing)
	l.s.SetFont(Bold, subheadingSize)
	l.s.Text(margin, l.y, otherHeading, AlignLeft)
	l.y += lineHeight + 1

	l.s.SetFont(Regular, normalSize)
	for _, skill := range cols.other.Skills {
		l.ensure(bulletSpacing)
		l.s.Text(margin+bulletIndent, l.y, "• "+skill, AlignLeft)
		l.y += bulletSpacing
	}
	l.y += sectionSpacing
}

func (l *layout) education(entries []Education) {
	l.ensure(headerHeight + 3*lineHeight)
	l.sectionHeader("Education")

	for i, e := range entries {
		l.ensure(3 * lineHeight)

		l.s.SetFont(Bold, institutionSize)
		l.s.Text(margin, l.y, e.Institution, AlignLeft)
		l.y += lineHeight

		l.s.SetFont(Regular, normalSize)
		l.s.Text(margin, l.y, e.Degree, AlignLeft)
		l.y += lineHeight

		l.s.SetFont(Italic, smallSize)
		l.s.Text(margin, l.y, e.Detail(), AlignLeft)
		l.y += lineHeight

		if i < len(entries)-1 {
			l.y += paragraphSpacing
		}
	}
	l.y += sectionSpacing
}

const (
	certHeight = 2 * lineHeight
	certStep   = 2*lineHeight + 1
)

func (l *layout) certifications(certs []Certification) {
	l.ensure(headerHeight + certHeight)
	l.sectionHeader("Certifications")

	cols := newAlternator(l.y, margin, l.limit(), certStep)
	x := [2]float64{margin, l.rightColumnX()}
	for _, c := range certs {
		col, y, newPage := cols.place(certHeight)
		if newPage {
			l.s.AddPage()
		}

		l.s.SetFont(Bold, normalSize)
		l.s.Text(x[col], y, c.Title, AlignLeft)
		l.s.SetFont(Regular, smallSize)
		l.s.Text(x[col], y+lineHeight, c.Detail(), AlignLeft)
	}
	l.y = cols.bottom() + sectionSpacing
}

// footers revisits every page once the page count is final.
func (l *layout) footers(generated time.Time) {
	total := l.s.PageCount()
	date := fmt.Sprintf("Generated on %d/%d/%d", generated.Month(), generated.Day(), generated.Year())
	center := l.pageW / 2

	for i := 1; i <= total; i++ {
		l.s.SetPage(i)
		l.s.SetFont(Regular, smallSize)
		l.s.Text(center, l.pageH-footerNumberRise, fmt.Sprintf("Page %d of %d", i, total), AlignCenter)
		l.s.Text(center, l.pageH-footerDateRise, date, AlignCenter)
	}
}
