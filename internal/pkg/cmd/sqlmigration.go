package cmd

import (
	"context"
	"fmt"

	"github.com/klwxsrx/profile-client/pkg/log"
	"github.com/klwxsrx/profile-client/pkg/sql"
)

type (
	SQLMigrations interface {
		Register(sources ...sql.MigrationSource) error
		MustRegister(sources ...sql.MigrationSource)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) Register(sources ...sql.MigrationSource) error {
	if len(sources) == 0 {
		return nil
	}

	err := sql.NewMigrator(s.db, s.logger).Execute(s.ctx, sources...)
	if err != nil {
		return fmt.Errorf("execute migrations: %w", err)
	}

	return nil
}

func (s *sqlMigrations) MustRegister(sources ...sql.MigrationSource) {
	if err := s.Register(sources...); err != nil {
		panic(err)
	}
}
