// Package site serves the portfolio page and the CV download.
package site

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/singleflight"

	"github.com/nivandosoares/portfolio/pkg/chart"
	"github.com/nivandosoares/portfolio/pkg/contact"
	"github.com/nivandosoares/portfolio/pkg/cv"
	"github.com/nivandosoares/portfolio/pkg/observability"
	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

//go:embed templates static
var assets embed.FS

// DefaultCacheSize is the number of generated CVs kept in memory.
const DefaultCacheSize = 8

// Options configures a Server. Data is required; everything else has a
// working default.
type Options struct {
	Data        portfolio.Data
	Exporter    *cv.Exporter
	Logger      *slog.Logger
	Metrics     *observability.Metrics
	Gatherer    prometheus.Gatherer
	Mailer      contact.Mailer
	CacheSize   int
	CORSOrigins []string
	ServiceName string
	Now         func() time.Time
}

// Server holds the immutable page data and the export machinery.
type Server struct {
	data        portfolio.Data
	exporter    *cv.Exporter
	logger      *slog.Logger
	metrics     *observability.Metrics
	gatherer    prometheus.Gatherer
	mailer      contact.Mailer
	cache       *lru.Cache[string, cv.Artifact]
	flight      singleflight.Group
	chart       []byte
	templates   *template.Template
	corsOrigins []string
	serviceName string
	now         func() time.Time
}

// New prepares a Server: templates are parsed and the skill chart is drawn
// once, up front.
func New(opts Options) (s *Server, err error) {
	err = opts.Data.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid portfolio data")
		return nil, err
	}

	s = &Server{
		data:        opts.Data,
		exporter:    opts.Exporter,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		gatherer:    opts.Gatherer,
		mailer:      opts.Mailer,
		corsOrigins: opts.CORSOrigins,
		serviceName: opts.ServiceName,
		now:         opts.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.serviceName == "" {
		s.serviceName = "portfolio"
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.exporter == nil {
		s.exporter = cv.NewExporter()
	}
	if s.exporter.Now == nil {
		s.exporter.Now = s.now
	}

	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	s.cache, err = lru.New[string, cv.Artifact](size)
	if err != nil {
		err = errors.Wrap(err, "failed to create cv cache")
		return nil, err
	}

	var buf bytes.Buffer
	err = chart.Render(&buf, s.data.TechnicalProfile.LanguageProficiency.Data)
	if err != nil {
		return nil, err
	}
	s.chart = buf.Bytes()

	s.templates, err = template.New("").Funcs(templateFuncs()).ParseFS(assets, "templates/*.html")
	if err != nil {
		err = errors.Wrap(err, "failed to parse templates")
		return nil, err
	}

	return s, err
}

// Router builds the gin engine with every route and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(s.serviceName))
	r.Use(requestLogger(s.logger))
	r.Use(pageViewMiddleware(s.metrics))
	r.SetHTMLTemplate(s.templates)

	static, _ := fs.Sub(assets, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.GET("/projects/:category", s.projects)
	r.GET("/privacy", s.privacy)

	r.GET("/cv", s.downloadCV)
	r.POST("/cv/generate", s.generateCV)

	r.GET("/chart/languages.png", s.languageChart)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	api := r.Group("/api")
	api.Use(cors.New(s.corsConfig()))
	api.GET("/portfolio", s.portfolioJSON)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if len(s.corsOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.corsOrigins
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	return config
}
