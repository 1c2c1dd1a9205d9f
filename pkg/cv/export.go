package cv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

const tracerName = "github.com/nivandosoares/portfolio/pkg/cv"

// Artifact is a finished CV document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Pages       int
	GeneratedAt time.Time
}

// Save writes the artifact into dir under its filename. The file appears
// atomically; a failed save leaves nothing behind.
func (a Artifact) Save(dir string) (path string, err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output dir %s", dir)
		return path, err
	}

	tmp, err := os.CreateTemp(dir, "."+a.Filename+".*")
	if err != nil {
		err = errors.Wrap(err, "failed to create temp file")
		return path, err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(a.Data)
	if err != nil {
		_ = tmp.Close()
		err = errors.Wrap(err, "failed to write cv")
		return path, err
	}
	err = tmp.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to close cv")
		return path, err
	}

	path = filepath.Join(dir, a.Filename)
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		err = errors.Wrapf(err, "failed to move cv into place at %s", path)
		return "", err
	}
	return path, err
}

// Exporter lays portfolio data out as a paginated A4 CV. The zero value is
// ready to use. Exports share no state and may run concurrently.
type Exporter struct {
	// NewSurface creates the drawing target for one export. Defaults to a
	// PDFSurface.
	NewSurface func(Metadata) Surface
	// Now stamps the footer and the artifact. Defaults to time.Now.
	Now func() time.Time
	// Education replaces the built-in education history when non-nil.
	Education []Education
}

// NewExporter returns an Exporter writing PDF documents.
func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) surface(meta Metadata) Surface {
	if e.NewSurface != nil {
		return e.NewSurface(meta)
	}
	return NewPDFSurface(meta)
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// EducationHistory is the education list the CV is rendered with.
func (e *Exporter) EducationHistory() []Education {
	if e.Education != nil {
		return e.Education
	}
	return DefaultEducation()
}

// ExportPortfolio exports d with the built-in certification list.
func (e *Exporter) ExportPortfolio(ctx context.Context, d portfolio.Data) (Artifact, error) {
	return e.Export(ctx, d.Personal, d.Introduction, d.Projects,
		d.TechnicalProfile.FullStackCapabilities.Sections, DefaultCertifications())
}

// Export renders the CV. Any failure is returned as an *ExportFailure and no
// artifact is produced.
func (e *Exporter) Export(ctx context.Context, profile portfolio.Profile, intro portfolio.Introduction,
	projects []portfolio.Project, sections []portfolio.CapabilitySection, certs []Certification) (artifact Artifact, err error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "cv.export")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	skills, err := resolveSkillColumns(sections)
	if err != nil {
		err = fail("skills", err)
		return artifact, err
	}

	generated := e.now()
	s := e.surface(Metadata{
		Title:     profile.Name + " - CV",
		Author:    profile.Name,
		CreatedAt: generated,
	})

	pages, err := render(s, document{
		profile:   profile,
		intro:     intro,
		projects:  projects,
		skills:    skills,
		education: e.EducationHistory(),
		certs:     certs,
		generated: generated,
	})
	if err != nil {
		return artifact, err
	}

	var buf bytes.Buffer
	err = s.Output(&buf)
	if err != nil {
		err = fail("output", err)
		return artifact, err
	}

	span.SetAttributes(attribute.Int("cv.pages", pages), attribute.Int("cv.bytes", buf.Len()))

	artifact = Artifact{
		Filename:    Filename(profile.Name),
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       pages,
		GeneratedAt: generated,
	}
	return artifact, err
}
