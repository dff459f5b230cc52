package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/auth"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/events"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/store/guard"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/store/mongostore"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/config"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

const closeTimeout = 5 * time.Second

// infrastructure holds the connections opened at startup. Fields that are
// disabled by configuration stay nil, including the publisher interface.
type infrastructure struct {
	tasks         ports.TaskStore
	users         ports.UserStore
	authenticator *auth.Authenticator
	publisher     ports.EventPublisher
	checkers      []ports.HealthChecker

	// closers run in order on shutdown.
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func(ctx context.Context) error
}

func openInfrastructure(
	ctx context.Context,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*infrastructure, error) {
	infra := &infrastructure{}

	if err := infra.openStore(ctx, cfg, metrics, logger); err != nil {
		return nil, err
	}

	var revocations auth.Revocations
	if cfg.Auth.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Auth.Redis.Addr,
			Password: cfg.Auth.Redis.Password,
			DB:       cfg.Auth.Redis.DB,
		})
		rr := auth.NewRedisRevocations(client)
		revocations = rr
		infra.checkers = append(infra.checkers, rr)
		infra.closers = append(infra.closers, namedCloser{"redis", func(context.Context) error {
			return client.Close()
		}})
	} else {
		logger.Warn("token revocation disabled; logout only clears the session cookie")
	}

	authenticator, err := auth.NewAuthenticator(auth.Options{
		Secret:      []byte(cfg.Auth.JWTSecret),
		TTL:         cfg.Auth.TokenTTL,
		Issuer:      cfg.Auth.Issuer,
		Revocations: revocations,
	})
	if err != nil {
		infra.Close(ctx, logger)
		return nil, fmt.Errorf("creating authenticator: %w", err)
	}
	infra.authenticator = authenticator

	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(events.Config{
			Brokers:      cfg.Events.Brokers,
			Topic:        cfg.Events.Topic,
			WriteTimeout: cfg.Events.WriteTimeout,
		}, metrics, logger)
		if err != nil {
			infra.Close(ctx, logger)
			return nil, fmt.Errorf("creating event publisher: %w", err)
		}
		infra.publisher = publisher

		// Events are best effort, so an unreachable broker only warns and
		// stays out of readiness.
		probeCtx, cancel := context.WithTimeout(ctx, cfg.Store.ConnectTimeout)
		if err := publisher.HealthCheck(probeCtx); err != nil {
			logger.Warn("event broker unreachable at startup", slog.Any("error", err))
		}
		cancel()
		// Flush pending events before the store goes away.
		infra.closers = append([]namedCloser{{"kafka", func(context.Context) error {
			return publisher.Close()
		}}}, infra.closers...)
	}

	return infra, nil
}

// openStore connects the configured backend and wraps it in a guard.
func (in *infrastructure) openStore(
	ctx context.Context,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) error {
	g := guard.New(guard.Config{
		Timeout:       cfg.Store.Timeout,
		MaxFailures:   cfg.Store.CircuitBreaker.MaxFailures,
		OpenTimeout:   cfg.Store.CircuitBreaker.Timeout,
		HalfOpenLimit: cfg.Store.CircuitBreaker.HalfOpenLimit,
	}, cfg.Store.Driver, metrics, logger)

	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := mongostore.Connect(ctx, mongostore.Config{
			URI:            cfg.Store.URI,
			Database:       cfg.Store.Database,
			ConnectTimeout: cfg.Store.ConnectTimeout,
		})
		if err != nil {
			return err
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			_ = client.Close(ctx)
			return err
		}
		in.tasks = g.Tasks(client.Tasks())
		in.users = g.Users(client.Users())
		in.checkers = append(in.checkers, g.Checker(client))
		in.closers = append(in.closers, namedCloser{"mongo", client.Close})

	case config.DriverPostgres, config.DriverSQLite:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Store.ConnectTimeout)
		defer cancel()

		db, err := sqlstore.Open(connectCtx, sqlstore.Config{
			Driver:          cfg.Store.Driver,
			DSN:             cfg.Store.DSN,
			MaxOpenConns:    cfg.Store.MaxOpenConns,
			MaxIdleConns:    cfg.Store.MaxIdleConns,
			ConnMaxLifetime: cfg.Store.ConnMaxLifetime,
			LogSQL:          cfg.Store.LogSQL,
		})
		if err != nil {
			return err
		}
		in.tasks = g.Tasks(db.Tasks())
		in.users = g.Users(db.Users())
		in.checkers = append(in.checkers, g.Checker(db))
		in.closers = append(in.closers, namedCloser{cfg.Store.Driver, db.Close})

	default:
		return fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	logger.Info("store connected", slog.String("driver", cfg.Store.Driver))
	return nil
}

// Close releases every opened connection, logging failures.
func (in *infrastructure) Close(ctx context.Context, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, closeTimeout)
	defer cancel()

	for _, c := range in.closers {
		if err := c.close(ctx); err != nil {
			logger.Error("closing connection", slog.String("component", c.name), slog.Any("error", err))
		}
	}
	in.closers = nil
}
