package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/profile-client/pkg/log"
)

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"

	defaultConnectionTimeout = 20 * time.Second
)

var ErrUnsupportedDriver = errors.New("unsupported sql driver")

type (
	Driver string

	Config struct {
		Driver             Driver
		DSN                string
		MaxOpenConnections int
		ConnectionTimeout  time.Duration
	}

	Database interface {
		TxClient
		Builder() sq.StatementBuilderType
		Close(ctx context.Context)
	}

	database struct {
		*sqlx.DB
		builder sq.StatementBuilderType
		logger  log.Logger
	}
)

func NewDatabase(ctx context.Context, config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	var placeholder sq.PlaceholderFormat
	switch config.Driver {
	case DriverSQLite:
		// every sqlite connection to :memory: opens a separate database
		config.MaxOpenConnections = 1
		placeholder = sq.Question
	case DriverPostgres:
		placeholder = sq.Dollar
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}

	db, err := openConnection(ctx, config)
	if err != nil {
		return nil, err
	}

	return &database{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  logger,
	}, nil
}

func (c *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *database) Builder() sq.StatementBuilderType {
	return c.builder
}

func (c *database) Close(ctx context.Context) {
	err := c.DB.Close()
	if err != nil {
		c.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func openConnection(ctx context.Context, config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(string(config.Driver), config.DSN)
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.PingContext(ctx)
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sql connection: %w", err)
	}
	return db, nil
}
