package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

const (
	defaultConnectionTimeout  = 20 * time.Second
	defaultMaxOpenConnections = 10
	sqliteInMemoryPath        = ":memory:"
)

type (
	Driver string

	Config struct {
		Driver             Driver
		DSN                DSN
		SQLitePath         string
		MaxOpenConnections int
		ConnectionTimeout  time.Duration
	}

	DSN struct {
		User     string
		Password string
		Address  string
		Database string
	}
)

func (d *DSN) String() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=disable", d.User, d.Password, d.Address, d.Database)
}

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	// Database routes queries to the transaction stored in the context by its own Transaction, if any.
	Database interface {
		TxClient
		Dialect() Driver
		Builder() sq.StatementBuilderType
		Close(ctx context.Context)
	}

	database struct {
		db      *sqlx.DB
		dialect Driver
		builder sq.StatementBuilderType
		logger  log.Logger
	}
)

func NewDatabase(config *Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}
	if config.MaxOpenConnections <= 0 {
		config.MaxOpenConnections = defaultMaxOpenConnections
	}

	var (
		db      *sqlx.DB
		builder sq.StatementBuilderType
		err     error
	)
	switch config.Driver {
	case DriverPostgres:
		db, err = openConnection("postgres", config.DSN.String(), config)
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	case DriverSQLite:
		db, err = openConnection("sqlite", sqliteDSN(config.SQLitePath), config)
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		if db != nil {
			// sqlite allows a single writer, in-memory database also lives within the connection
			db.SetMaxOpenConns(1)
			db.SetConnMaxLifetime(0)
		}
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", config.Driver, err)
	}

	return &database{
		db:      db,
		dialect: config.Driver,
		builder: builder,
		logger:  logger,
	}, nil
}

func (d *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.client(ctx).ExecContext(ctx, query, args...)
}

func (d *database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).GetContext(ctx, dest, query, args...)
}

func (d *database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.client(ctx).SelectContext(ctx, dest, query, args...)
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (d *database) Dialect() Driver {
	return d.dialect
}

func (d *database) Builder() sq.StatementBuilderType {
	return d.builder
}

func (d *database) Close(ctx context.Context) {
	err := d.db.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func (d *database) client(ctx context.Context) Client {
	data, ok := ctx.Value(dbTransactionContextKey).(txData)
	if ok && data.owner == Database(d) {
		return data.ClientTx
	}

	return d.db
}

// ForUpdate locks the selected rows where the dialect supports row locks, sqlite serializes writers anyway.
func ForUpdate(db Database, builder sq.SelectBuilder, options ...string) sq.SelectBuilder {
	if db.Dialect() != DriverPostgres {
		return builder
	}

	suffix := "for update"
	for _, option := range options {
		suffix += " " + option
	}

	return builder.Suffix(suffix)
}

func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func openConnection(driverName, dsn string, config *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(config.MaxOpenConnections)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(func() error {
		return db.Ping()
	}, eb)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func sqliteDSN(path string) string {
	if path == "" {
		path = sqliteInMemoryPath
	}

	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
}
