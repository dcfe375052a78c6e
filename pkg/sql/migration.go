package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/klwxsrx/profile-client/pkg/log"
)

const (
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type (
	MigrationSource interface {
		Name() string
		Files() fs.ReadDirFS
	}

	Migrator struct {
		db     Database
		logger log.Logger
	}

	fsMigrations struct {
		name  string
		files fs.ReadDirFS
	}
)

// FSMigrations exposes *.sql files of the fs root as a migration source, files are applied in name order.
func FSMigrations(name string, files fs.ReadDirFS) MigrationSource {
	return fsMigrations{name: name, files: files}
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, source := range sources {
		err = m.performSourceMigrations(ctx, source, performedMigrationIDs)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", source.Name(), err)
		}
	}

	return nil
}

func (m *Migrator) performSourceMigrations(
	ctx context.Context,
	source MigrationSource,
	performedMigrationIDs map[string]struct{},
) error {
	entries, err := source.Files().ReadDir(".")
	if err != nil {
		return fmt.Errorf("read migration files: %w", err)
	}

	fileNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		fileNames = append(fileNames, entry.Name())
	}
	slices.Sort(fileNames)

	for _, fileName := range fileNames {
		migrationID := source.Name() + "/" + fileName
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source.Files(), fileName)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fileName, err)
		}

		err = m.performMigration(ctx, migrationID, string(content))
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	query, args, err := m.db.Builder().Insert("migration").Columns("id").Values(migrationID).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err = client.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.db.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func (s fsMigrations) Name() string {
	return s.name
}

func (s fsMigrations) Files() fs.ReadDirFS {
	return s.files
}
