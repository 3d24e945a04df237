package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

type (
	Migration struct {
		ID  string
		SQL string
	}

	MigrationSource func() ([]Migration, error)

	Migrator struct {
		db          Database
		transaction *transaction
		logger      log.Logger
	}
)

// FSMigrations reads one migration per file, the file name is the migration id.
func FSMigrations(files fs.ReadDirFS) MigrationSource {
	return func() ([]Migration, error) {
		entries, err := files.ReadDir(".")
		if err != nil {
			return nil, fmt.Errorf("read migrations dir: %w", err)
		}

		result := make([]Migration, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
				continue
			}

			content, err := fs.ReadFile(files, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
			}

			result = append(result, Migration{
				ID:  entry.Name(),
				SQL: string(content),
			})
		}

		return result, nil
	}
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{
		db:          db,
		transaction: &transaction{db: db},
		logger:      logger,
	}
}

// Execute applies the migrations of each source in the given order, migrations within a source are ordered by id.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		migrations, err := source()
		if err != nil {
			return fmt.Errorf("get migrations: %w", err)
		}

		sort.Slice(migrations, func(i, j int) bool {
			return migrations[i].ID < migrations[j].ID
		})

		for _, migration := range migrations {
			err = m.transaction.Execute(ctx, func(ctx context.Context) error {
				return m.performMigration(ctx, migration)
			}, migrationLockName)
			if err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.ID, err)
			}
		}
	}

	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migration Migration) error {
	query, args, err := m.db.Builder().
		Select("count(*)").
		From("migration").
		Where("id = ?", migration.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	var performed int
	err = m.db.GetContext(ctx, &performed, query, args...)
	if err != nil {
		return fmt.Errorf("check migration performed: %w", err)
	}
	if performed > 0 {
		return nil
	}

	queries := splitToQueries(migration.SQL)
	if len(queries) == 0 {
		return errors.New("empty migration")
	}

	for _, query := range queries {
		_, err = m.db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	query, args, err = m.db.Builder().
		Insert("migration").
		Columns("id").
		Values(migration.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed successfully")
	return nil
}

func splitToQueries(sql string) []string {
	parts := strings.Split(sql, querySeparator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
