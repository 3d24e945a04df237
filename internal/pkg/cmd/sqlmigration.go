package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/sql"
)

type (
	// SQLMigrations applies the schema of a component the first time the component is built.
	SQLMigrations interface {
		MustApply(component string, sources ...sql.MigrationSource)
	}

	sqlMigrations struct {
		ctx      context.Context
		migrator *sql.Migrator
		logger   log.Logger

		mutex   sync.Mutex
		applied map[string]struct{}
	}
)

func NewSQLMigrations(ctx context.Context, db sql.Database, logger log.Logger) SQLMigrations {
	return &sqlMigrations{
		ctx:      ctx,
		migrator: sql.NewMigrator(db, logger),
		logger:   logger,
		applied:  make(map[string]struct{}),
	}
}

func (s *sqlMigrations) MustApply(component string, sources ...sql.MigrationSource) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.applied[component]; ok {
		return
	}

	if err := s.migrator.Execute(s.ctx, sources...); err != nil {
		panic(fmt.Errorf("execute %s migrations: %w", component, err))
	}

	s.applied[component] = struct{}{}
	s.logger.With(log.Fields{
		"component": component,
		"sources":   len(sources),
	}).Info(s.ctx, "sql migrations applied")
}
