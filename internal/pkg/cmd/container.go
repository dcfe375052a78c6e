package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klwxsrx/profile-client/pkg/cmd"
	"github.com/klwxsrx/profile-client/pkg/env"
	"github.com/klwxsrx/profile-client/pkg/http"
	"github.com/klwxsrx/profile-client/pkg/lazy"
	"github.com/klwxsrx/profile-client/pkg/log"
	"github.com/klwxsrx/profile-client/pkg/metric"
	"github.com/klwxsrx/profile-client/pkg/observability"
	"github.com/klwxsrx/profile-client/pkg/sql"
	pkgtime "github.com/klwxsrx/profile-client/pkg/time"
)

const (
	metricsNamespace = "profilectl"

	defaultStateDir  = ".profilectl"
	defaultStateFile = "state.db"
)

type InfrastructureContainer struct {
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Observer          lazy.Loader[observability.Observer]
	Metrics           lazy.Loader[*metric.PrometheusMetrics]
	Clock             lazy.Loader[pkgtime.Clock]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Observer:          observer,
		Metrics:           metrics,
		Clock:             lazy.Value(pkgtime.NewClock()),
		Logger:            logger,
	}
}

// Close must be deferred directly by main so a panic is logged before exit.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.LogPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.Metrics.IfLoaded(func(metrics *metric.PrometheusMetrics) {
		path := env.Must(env.ParseDefault[string]("METRICS_TEXTFILE", ""))
		if path == "" {
			return
		}

		err := metrics.WriteTextfile(path)
		if err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to write metrics textfile")
		}
	})
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[*metric.PrometheusMetrics] {
	return lazy.New(func() (*metric.PrometheusMetrics, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

// loggerProvider writes to stderr, stdout is reserved for command output.
func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return cmd.InitLogger(log.LevelWarn, log.WithWriter(os.Stderr)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		driver := sql.Driver(env.Must(env.ParseDefault[string]("STATE_SQL_DRIVER", string(sql.DriverSQLite))))

		dsn := env.Must(env.ParseDefault[string]("STATE_SQL_DSN", ""))
		if dsn == "" {
			if driver != sql.DriverSQLite {
				return nil, fmt.Errorf("%w: STATE_SQL_DSN is required for driver %s", env.ErrNotFound, driver)
			}

			var err error
			dsn, err = defaultSQLiteDSN()
			if err != nil {
				return nil, err
			}
		}

		sqlConfig := &sql.Config{
			Driver:             driver,
			DSN:                dsn,
			MaxOpenConnections: env.Must(env.ParseDefault[int]("STATE_SQL_MAX_OPEN_CONNECTIONS", 0)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("STATE_SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("open sql connection: %w", err)
		}

		return db, nil
	})
}

func defaultSQLiteDSN() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	dir := filepath.Join(home, defaultStateDir)
	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}

	return filepath.Join(dir, defaultStateFile), nil
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		database, err := db.Load()
		if err != nil {
			return nil, err
		}

		return NewSQLMigrations(ctx, database, logger.MustLoad()), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelDebug, log.LevelWarn),
		), nil
	})
}
