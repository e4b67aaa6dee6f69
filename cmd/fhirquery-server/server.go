package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ehr/fhirquery/internal/config"
	"github.com/ehr/fhirquery/internal/domain/cohort"
	"github.com/ehr/fhirquery/internal/platform/db"
	"github.com/ehr/fhirquery/internal/platform/middleware"
)

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	logger := zerolog.New(out)
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}
	return logger.Level(cfg.Level()).With().Timestamp().Logger()
}

// openDataset loads the patient records from the configured source. The
// returned pool is nil for the static source; otherwise the caller closes it.
func openDataset(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*cohort.Dataset, *pgxpool.Pool, error) {
	var (
		src  cohort.RecordSource
		pool *pgxpool.Pool
	)

	switch cfg.PatientSource {
	case config.SourcePostgres:
		var err error
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("connected to database")
		src = cohort.NewPGSource(pool)
	default:
		src = cohort.NewStaticSource()
	}

	dataset, err := cohort.LoadDataset(ctx, src)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, nil, err
	}

	logger.Info().
		Str("source", cfg.PatientSource).
		Int("patients", dataset.Len()).
		Strs("conditions", dataset.Vocabulary().Terms()).
		Msg("patient dataset loaded")
	return dataset, pool, nil
}

// newServer wires middleware and routes. /health/db is registered only when
// pinger is non-nil.
func newServer(cfg *config.Config, logger zerolog.Logger, svc *cohort.Service, pinger db.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 || rateLimitCfg.BurstSize < 1 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	e.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RateLimit(rateLimitCfg))

	cohort.NewHandler(svc).RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"version":  version,
			"source":   cfg.PatientSource,
			"patients": svc.Dataset().Len(),
		})
	})
	if pinger != nil {
		e.GET("/health/db", db.HealthHandler(pinger))
	}

	return e
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg, os.Stdout)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dataset, pool, err := openDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}
	var pinger db.Pinger
	if pool != nil {
		defer pool.Close()
		pinger = pool
	}

	interp := cohort.NewInterpreter(dataset)
	tables := interp.Tables()
	logger.Debug().
		Int("vocabulary", tables.Vocabulary.Len()).
		Int("synonyms", tables.Synonyms.Len()).
		Msg("query interpreter ready")

	svc := cohort.NewService(interp, dataset, logger)
	e := newServer(cfg, logger, svc, pinger)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("version", version).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
