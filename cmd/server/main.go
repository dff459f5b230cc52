// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	adapthttp "github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/app"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/config"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/health"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second
)

// flags holds the command line. Each flag falls back to an environment
// variable so container deployments need no arguments.
type flags struct {
	profile   string
	configDir string
	envFiles  []string
}

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.StringVarP(&f.profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"configuration profile (local, dev, prod); defaults to $APP_PROFILE")
	fs.StringVar(&f.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	fs.StringSliceVar(&f.envFiles, "env-file", []string{".env"}, "dotenv files to load; missing files are skipped")

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if f.profile == "" {
		return flags{}, errors.New("--profile or APP_PROFILE is required (e.g. local, dev, prod)")
	}
	return f, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(f.profile,
		config.WithConfigDir(f.configDir),
		config.WithEnvFiles(f.envFiles...),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Infrastructure: store, revocation cache, event publisher.
	infra, err := openInfrastructure(ctx, cfg, otel.metrics, logger)
	if err != nil {
		shutdownTelemetry(otel, logger)
		return err
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, infra)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		infra.Close(ctx, logger)
		shutdownTelemetry(otel, logger)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range infra.checkers {
		registry.Register(checker)
	}

	// Bind before serving so a taken port aborts startup.
	if err := server.Listen(); err != nil {
		infra.Close(context.Background(), logger)
		shutdownTelemetry(otel, logger)
		return err
	}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		cancel()

		// Wait for Serve() to return.
		<-serverErr
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	// Release infrastructure only after in-flight requests are done.
	infra.Close(context.Background(), logger)
	shutdownTelemetry(otel, logger)

	if runErr == nil {
		logger.Info("shutdown complete")
	}
	return runErr
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func shutdownTelemetry(o *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := o.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (task.Calendar, error) {
		loc, err := cfg.Clock.Location()
		if err != nil {
			return task.Calendar{}, fmt.Errorf("clock timezone: %w", err)
		}
		return task.Calendar{Location: loc}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		infra := do.MustInvoke[*infrastructure](i)
		calendar := do.MustInvoke[task.Calendar](i)
		return app.NewTaskService(infra.tasks, infra.publisher, calendar, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		infra := do.MustInvoke[*infrastructure](i)
		return app.NewAccountService(infra.users, infra.authenticator, logger,
			app.WithHashCost(cfg.Auth.BcryptCost),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		calendar := do.MustInvoke[task.Calendar](i)
		return handlers.NewTaskHandler(svc, calendar, dto.IngestLimits{
			MaxBodyBytes: cfg.Ingest.MaxBodyBytes,
			MaxImages:    cfg.Ingest.MaxImages,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AccountHandler, error) {
		svc := do.MustInvoke[ports.AccountService](i)
		return handlers.NewAccountHandler(svc, handlers.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		infra := do.MustInvoke[*infrastructure](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		routes := adapthttp.Routes{
			Tasks:        do.MustInvoke[*handlers.TaskHandler](i),
			Accounts:     do.MustInvoke[*handlers.AccountHandler](i),
			Health:       do.MustInvoke[*handlers.HealthHandler](i),
			Authenticate: middleware.Authenticate(infra.authenticator, cfg.Auth.CookieName),
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.SecurityHeaders(),
			middleware.RateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
				Burst:             cfg.Server.RateLimit.Burst,
			}),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
