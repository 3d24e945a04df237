package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	commonhttp "github.com/klwxsrx/social-profile-service/internal/pkg/http"
	"github.com/klwxsrx/social-profile-service/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/env"
	"github.com/klwxsrx/social-profile-service/pkg/event"
	"github.com/klwxsrx/social-profile-service/pkg/http"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/lazy"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/message"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/observability"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
	"github.com/klwxsrx/social-profile-service/pkg/pulsar"
	"github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type InfrastructureContainer struct {
	HTTPServer         lazy.Loader[http.Server]
	HTTPClientFactory  lazy.Loader[HTTPClientFactory]
	MessageBusListener lazy.Loader[message.BusListener]
	MessageOutbox      lazy.Loader[*message.OutboxImpl]
	DBMigrations       lazy.Loader[SQLMigrations]
	DB                 lazy.Loader[sql.Database]
	Transaction        lazy.Loader[persistence.Transaction]
	IdempotencyKeys    lazy.Loader[idk.ServiceImpl]
	Observer           lazy.Loader[observability.Observer]
	Clock              lazy.Loader[pkgtime.Clock]
	Metrics            lazy.Loader[metric.Metrics]
	Logger             lazy.Loader[log.Logger]

	messageOutboxStorage lazy.Loader[message.OutboxStorage]
	messageBrokerImpl    lazy.Loader[*pulsar.MessageBroker]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	promRegistry := prometheusRegistryProvider()
	metrics := metricsProvider(promRegistry)
	logger := loggerProvider()
	observer := observerProvider(logger)
	clock := clockProvider()

	db := sqlDatabaseProvider(logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	transaction := sqlTransactionProvider(db)
	idempotencyKeys := idempotencyKeysProvider(db, dbMigrations, clock)
	sqlMessageOutboxStorage := sqlMessageOutboxStorageProvider(db, dbMigrations)

	msgBrokerImpl := pulsarMessageBrokerProvider(logger)
	msgBroker := lazy.New(func() (message.Broker, error) { return msgBrokerImpl.Load() })

	return &InfrastructureContainer{
		HTTPServer:         httpServerProvider(promRegistry, observer, metrics, logger),
		HTTPClientFactory:  httpClientFactoryProvider(observer, metrics, logger),
		MessageBusListener: messageBusListenerProvider(msgBroker, observer, metrics, logger),
		MessageOutbox:      messageOutboxProvider(sqlMessageOutboxStorage, transaction, msgBroker, clock, metrics, logger),
		DBMigrations:       dbMigrations,
		DB:                 db,
		Transaction:        transaction,
		IdempotencyKeys:    idempotencyKeys,
		Observer:           observer,
		Clock:              clock,
		Metrics:            metrics,
		Logger:             logger,

		messageOutboxStorage: sqlMessageOutboxStorage,
		messageBrokerImpl:    msgBrokerImpl,
	}
}

// EventDispatcher stores events of the topic in the outbox within the current transaction.
func (i *InfrastructureContainer) EventDispatcher(topic message.Topic) event.Dispatcher {
	return message.NewEventDispatcher(
		topic,
		i.messageOutboxStorage.MustLoad(),
		i.Observer.MustLoad(),
		i.Clock.MustLoad(),
	)
}

// Close must be deferred directly by main to recover an app panic.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	panicked := cmd.LogPanic(ctx, i.Logger.MustLoad(), recover())

	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })

	if panicked {
		os.Exit(1)
	}
}

func prometheusRegistryProvider() lazy.Loader[*metric.PrometheusRegistry] {
	return lazy.New(func() (*metric.PrometheusRegistry, error) {
		enabled := env.Must(env.ParseWithDefault("METRICS_ENABLED", false))
		if !enabled {
			return nil, nil
		}

		return metric.NewPrometheusRegistry(), nil
	})
}

func metricsProvider(registry lazy.Loader[*metric.PrometheusRegistry]) lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		promRegistry := registry.MustLoad()
		if promRegistry == nil {
			return metric.NewMetricsStub(), nil
		}

		return promRegistry.Metrics(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr := env.Must(env.ParseWithDefault("LOG_LEVEL", "info"))
		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.NewLogging(logger.MustLoad()), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewClock(), nil
	})
}

func sqlDatabaseProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		driver := sql.Driver(env.Must(env.ParseWithDefault("SQL_DRIVER", string(sql.DriverPostgres))))
		sqlConfig := &sql.Config{
			Driver:             driver,
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 0)),
		}

		switch driver {
		case sql.DriverSQLite:
			sqlConfig.SQLitePath = env.Must(env.ParseWithDefault("SQL_SQLITE_PATH", ""))
		default:
			sqlConfig.DSN = sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			}
		}

		sqlConnTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func sqlTransactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(db.MustLoad()), nil
	})
}

func idempotencyKeysProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[idk.ServiceImpl] {
	return lazy.New(func() (idk.ServiceImpl, error) {
		dbMigrations.MustLoad().MustApply("idempotency-keys", sql.IdempotencyKeyMigrations)
		return idk.NewService(
			sql.NewIdempotencyKeyStorage(db.MustLoad(), clock.MustLoad()),
			clock.MustLoad(),
			idk.DefaultKeyTTL,
		), nil
	})
}

func sqlMessageOutboxStorageProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
) lazy.Loader[message.OutboxStorage] {
	return lazy.New(func() (message.OutboxStorage, error) {
		dbMigrations.MustLoad().MustApply("message-outbox", sql.MessageOutboxMigrations)
		return sql.NewMessageOutboxStorage(db.MustLoad()), nil
	})
}

func httpServerProvider(
	promRegistry lazy.Loader[*metric.PrometheusRegistry],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		opts := []http.ServerOption{
			http.WithHealthCheck(),
		}
		if registry := promRegistry.MustLoad(); registry != nil {
			opts = append(opts, http.WithMetricsHandler(registry.Handler()))
		}
		opts = append(opts,
			http.WithObservability(observer.MustLoad()),
			commonhttp.WithAuth(),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		)

		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress))
		return http.NewServer(address, opts...), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad()),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func pulsarMessageBrokerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		config := &pulsar.Config{
			Address: env.Must(env.Parse[string]("PULSAR_ADDRESS")),
		}
		connTimeout := env.Must(env.ParseOptional[*time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		messageBroker, err := pulsar.NewMessageBroker(config, logger.MustLoad().WithField("component", "pulsar"))
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return messageBroker, nil
	})
}

func messageBusListenerProvider(
	msgBroker lazy.Loader[message.Broker],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.BusListener] {
	return lazy.New(func() (message.BusListener, error) {
		return message.NewBusListener(
			msgBroker.MustLoad(),
			message.WithObservability(observer.MustLoad()),
			message.WithMetrics(metrics.MustLoad()),
			message.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func messageOutboxProvider(
	outboxStorage lazy.Loader[message.OutboxStorage],
	transaction lazy.Loader[persistence.Transaction],
	msgBroker lazy.Loader[message.Broker],
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*message.OutboxImpl] {
	return lazy.New(func() (*message.OutboxImpl, error) {
		pollInterval := env.Must(env.ParseWithDefault("MESSAGE_OUTBOX_POLL_INTERVAL", time.Second))
		return message.NewOutbox(
			outboxStorage.MustLoad(),
			transaction.MustLoad(),
			msgBroker.MustLoad(),
			clock.MustLoad(),
			message.WithOutboxPollInterval(pollInterval),
			message.WithOutboxMetrics(metrics.MustLoad()),
			message.WithOutboxLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
