package site

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nivandosoares/portfolio/pkg/contact"
	"github.com/nivandosoares/portfolio/pkg/cv"
	"github.com/nivandosoares/portfolio/pkg/observability"
	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.pageView())
}

// projects renders one category tab for HTMX.
func (s *Server) projects(c *gin.Context) {
	category := c.Param("category")
	if !portfolio.IsCategory(category) {
		c.String(http.StatusNotFound, "unknown project category %q", category)
		return
	}
	c.HTML(http.StatusOK, "project-list.html", projectList{
		Category: category,
		Tabs:     categoryTabs(category),
		Projects: s.data.ProjectsIn(category),
	})
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title": "Privacy Policy",
		"name":  s.data.Personal.Name,
	})
}

func (s *Server) languageChart(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", s.chart)
}

func (s *Server) portfolioJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.data)
}

// downloadCV serves the PDF as an attachment.
func (s *Server) downloadCV(c *gin.Context) {
	artifact, err := s.exportCV(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "notice.html", cv.Failed(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// generateCV is the HTMX trigger: it builds the document, then redirects the
// browser to the download, which is served from the cache.
func (s *Server) generateCV(c *gin.Context) {
	_, err := s.exportCV(c.Request.Context())
	if err != nil {
		notice := cv.Failed(err)
		setNoticeTrigger(c, notice)
		c.HTML(http.StatusInternalServerError, "notice.html", notice)
		return
	}

	notice := cv.Succeeded()
	setNoticeTrigger(c, notice)
	c.Header("HX-Redirect", "/cv")
	c.HTML(http.StatusOK, "notice.html", notice)
}

func setNoticeTrigger(c *gin.Context, n cv.Notice) {
	payload, err := json.Marshal(map[string]cv.Notice{"notice": n})
	if err != nil {
		return
	}
	c.Header("HX-Trigger", string(payload))
}

// exportCV returns today's CV, generating it at most once per day and
// coalescing concurrent requests.
func (s *Server) exportCV(ctx context.Context) (artifact cv.Artifact, err error) {
	key := s.now().Format(time.DateOnly)
	done := s.metrics.StartExport()
	span := trace.SpanFromContext(ctx)

	if cached, ok := s.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cv.cached", true))
		done(observability.ResultCached, cached.Pages)
		return cached, nil
	}

	span.SetAttributes(attribute.Bool("cv.cached", false))
	v, err, shared := s.flight.Do(key, func() (any, error) {
		a, exportErr := s.exporter.ExportPortfolio(ctx, s.data)
		if exportErr != nil {
			return cv.Artifact{}, exportErr
		}
		s.cache.Add(key, a)
		return a, nil
	})
	if err != nil {
		done(observability.ResultFailure, 0)
		s.logger.ErrorContext(ctx, "cv export failed", "error", err)
		return artifact, err
	}

	artifact = v.(cv.Artifact)
	done(observability.ResultSuccess, artifact.Pages)
	s.logger.InfoContext(ctx, "cv exported",
		"file", artifact.Filename, "pages", artifact.Pages, "bytes", len(artifact.Data), "shared", shared)
	return artifact, err
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// submitContact answers with a fragment in both outcomes so HTMX swaps it in.
func (s *Server) submitContact(c *gin.Context) {
	msg := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}

	err := msg.Validate()
	if err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": "Please check the form: " + err.Error() + "."})
		return
	}

	if s.mailer == nil {
		err = contact.ErrNotConfigured
	} else {
		err = s.mailer.Send(c.Request.Context(), msg)
	}
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "contact email failed", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.logger.InfoContext(c.Request.Context(), "contact email sent")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
