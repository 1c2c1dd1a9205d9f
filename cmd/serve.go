package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nivandosoares/portfolio/pkg/config"
	"github.com/nivandosoares/portfolio/pkg/contact"
	"github.com/nivandosoares/portfolio/pkg/cv"
	"github.com/nivandosoares/portfolio/pkg/observability"
	"github.com/nivandosoares/portfolio/pkg/portfolio"
	"github.com/nivandosoares/portfolio/pkg/site"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	Long: `Serve the portfolio page, the CV download, the skill chart and the
JSON API. Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	serveCmd.Flags().String("port", "", "listen port (env PORT, default 8080)")
	bindFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) (err error) {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	telemetry, err := observability.SetupTracing(ctx, observability.TracingConfig{
		Endpoint:       cfg.OTLPEndpoint,
		Headers:        cfg.OTLPHeaders,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: Version,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize tracing")
	}
	if telemetry != nil {
		logger.InfoContext(ctx, "tracing enabled", "endpoint", cfg.OTLPEndpoint)
	}

	data, err := portfolio.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	var mailer contact.Mailer
	if cfg.SMTP.Enabled() {
		mailer = &contact.SMTPMailer{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			To:   cfg.SMTP.To,
		}
	} else {
		logger.InfoContext(ctx, "contact form disabled (no SMTP credentials)")
	}

	srv, err := site.New(site.Options{
		Data:        data,
		Exporter:    cv.NewExporter(),
		Logger:      logger,
		Metrics:     metrics,
		Gatherer:    prometheus.DefaultGatherer,
		Mailer:      mailer,
		CacheSize:   cfg.CVCacheSize,
		CORSOrigins: cfg.CORSOrigins,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "http server starting", "addr", server.Addr, "name", data.Personal.Name)
		serveErr := server.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return errors.Wrap(serveErr, "http server error")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		if tErr := telemetry.Shutdown(shutdownCtx); tErr != nil {
			logger.ErrorContext(shutdownCtx, "otel shutdown error", "error", tErr)
		}
		if shutdownErr != nil {
			return errors.Wrap(shutdownErr, "http server shutdown")
		}
		logger.Info("shutdown complete")
		return nil
	})

	err = g.Wait()
	return err
}
