package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"callcenter-service/config"
	httpDelivery "callcenter-service/delivery/http"
	"callcenter-service/domain/model"
	"callcenter-service/domain/repository"
	"callcenter-service/event"
	"callcenter-service/pkg/database"
	"callcenter-service/pkg/kafka"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/metrics"
	"callcenter-service/pkg/redis"
	"callcenter-service/repository/cache"
	pgRepository "callcenter-service/repository/postgres"
	"callcenter-service/seed"
	"callcenter-service/usecase"
)

const (
	metricsNamespace     = "callcenter"
	eventDeliveryTimeout = 30 * time.Second
)

// newLogger builds the application logger from the logging section.
func newLogger(cfg *config.Config) logger.LoggerInterface {
	return logger.NewWithOptions(
		logger.WithLevelName(cfg.Logging.Level),
		logger.WithFormat(cfg.Logging.Format),
		logger.WithRequestID(true),
	)
}

// databaseConfig converts the configuration file units into the client's.
func databaseConfig(cfg config.DatabaseConfig) database.Config {
	return database.Config{
		Driver:          cfg.Driver,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		Schema:          cfg.Postgres.Schema,
		SSLMode:         cfg.Postgres.SSLMode,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
		SQLitePath:      cfg.SQLite.Path,
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxOpenConns:    cfg.MaxOpenConns,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTime) * time.Minute,
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Minute,
		Debug:           cfg.Debug,
	}
}

// openDatabase connects to the configured store and, when asked to, migrates
// the schema.
func openDatabase(cfg *config.Config, migrate bool) (database.Client, error) {
	client, err := database.NewClient(databaseConfig(cfg.Infrastructure.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if migrate {
		if err := client.Migrate(model.All()...); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return client, nil
}

// repositories holds the accessors of every entity.
type repositories struct {
	agents     repository.Agent
	customers  repository.Customer
	calls      repository.Call
	tickets    repository.Ticket
	transactor repository.Transactor
}

func (r repositories) seed() seed.Repositories {
	return seed.Repositories{
		Agents:    r.agents,
		Customers: r.customers,
		Calls:     r.calls,
		Tickets:   r.tickets,
	}
}

// newRepositories builds the store accessors. A nil cacheClient leaves the
// agent and customer lookups uncached.
func newRepositories(cfg *config.Config, db database.Client, cacheClient redis.RedisClient, appLogger logger.LoggerInterface) repositories {
	gormDB := db.GetDB()
	maxPageSize := pgRepository.WithMaxPageSize(cfg.Pagination.MaxPageSize)

	calls := pgRepository.NewCallRepository(gormDB, appLogger, maxPageSize)
	tickets := pgRepository.NewTicketRepository(gormDB, appLogger, maxPageSize)
	agents := pgRepository.NewAgentRepository(gormDB, appLogger, calls, tickets)
	customers := pgRepository.NewCustomerRepository(gormDB, appLogger)

	if cacheClient != nil {
		ttl := cfg.Infrastructure.Redis.TTL()
		agents = cache.NewAgentRepository(agents, cacheClient, appLogger, ttl)
		customers = cache.NewCustomerRepository(customers, cacheClient, appLogger, ttl)
	}

	return repositories{
		agents:     agents,
		customers:  customers,
		calls:      calls,
		tickets:    tickets,
		transactor: pgRepository.NewTransactor(gormDB, appLogger),
	}
}

// app is the fully wired HTTP service.
type app struct {
	cfg     *config.Config
	logger  logger.LoggerInterface
	db      database.Client
	redis   redis.RedisClient
	kafka   kafka.KafkaClient
	metrics *metrics.Metrics
	handler http.Handler
}

// newApp connects every configured backend and assembles the router. On
// error whatever was already opened is closed again.
func newApp(ctx context.Context, cfg *config.Config, appLogger logger.LoggerInterface) (_ *app, err error) {
	a := &app{
		cfg:     cfg,
		logger:  appLogger,
		metrics: metrics.New(metricsNamespace),
	}
	defer func() {
		if err != nil {
			a.close(ctx)
		}
	}()

	dbCfg := cfg.Infrastructure.Database
	if a.db, err = openDatabase(cfg, dbCfg.IsUseMigrate); err != nil {
		return nil, err
	}

	if cfg.Infrastructure.Redis.Enabled {
		a.redis, err = redis.New(redis.Config{
			Addrs:    cfg.Infrastructure.Redis.Addrs,
			Username: cfg.Infrastructure.Redis.Username,
			Password: cfg.Infrastructure.Redis.Password,
			DB:       cfg.Infrastructure.Redis.DB,
			PoolSize: cfg.Infrastructure.Redis.PoolSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
	}

	publisher := event.NewNoopPublisher()
	if cfg.Infrastructure.Kafka.Enabled {
		a.kafka, err = kafka.NewWithConfig(kafka.Config{
			Brokers:        cfg.Infrastructure.Kafka.Brokers,
			ClientID:       cfg.Infrastructure.Kafka.ClientID,
			ProduceTimeout: eventDeliveryTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Kafka client: %w", err)
		}
		publisher = event.NewKafkaPublisher(a.kafka, cfg.Infrastructure.Kafka.Topic, appLogger, a.metrics)
	}

	repos := newRepositories(cfg, a.db, a.redis, appLogger)

	if dbCfg.Seed {
		result, err := seed.Run(ctx, repos.seed(), appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		appLogger.Info("Sample data loaded", "inserted", result.Inserted, "skipped", result.Skipped)
	}

	agentUseCase := usecase.NewAgentUseCase(repos.agents, repos.transactor, publisher, a.metrics, appLogger)
	customerUseCase := usecase.NewCustomerUseCase(repos.customers, publisher, appLogger)
	callUseCase := usecase.NewCallUseCase(repos.calls, repos.transactor, publisher, appLogger)
	ticketUseCase := usecase.NewTicketUseCase(repos.tickets, repos.transactor, publisher, appLogger)

	router := &httpDelivery.Router{
		AgentHandler:    httpDelivery.NewAgentHandler(agentUseCase, appLogger),
		CustomerHandler: httpDelivery.NewCustomerHandler(customerUseCase, appLogger),
		CallHandler:     httpDelivery.NewCallHandler(callUseCase, appLogger),
		TicketHandler:   httpDelivery.NewTicketHandler(ticketUseCase, appLogger),
		HealthHandler:   httpDelivery.NewHealthHandler(a.db, appLogger),
		Metrics:         a.metrics,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AppLogger:       appLogger,
	}
	a.handler = router.SetupRoutes()

	return a, nil
}

func (a *app) server() *http.Server {
	return &http.Server{
		Addr:         ":" + strconv.Itoa(a.cfg.Server.Port),
		Handler:      a.handler,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
	}
}

// close flushes pending events and releases every backend connection.
func (a *app) close(ctx context.Context) {
	if a.kafka != nil {
		if err := a.kafka.Flush(ctx); err != nil {
			a.logger.Warn("Error flushing pending events", "error", err)
		}
		if err := a.kafka.Close(); err != nil {
			a.logger.Warn("Error closing Kafka client", "error", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Error closing Redis client", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("Error closing database connection", "error", err)
		}
	}
}
