package di

import (
	"context"
	"fmt"
	"time"

	"SolarAPI/internal/domain/repository"
	"SolarAPI/internal/handler/api"
	internalrepo "SolarAPI/internal/repository"
	"SolarAPI/internal/services/analytics"
	"SolarAPI/internal/usecase"
	"SolarAPI/pkg/cache"
	pkgch "SolarAPI/pkg/clickhouse"
	"SolarAPI/pkg/config"
	pkgkafka "SolarAPI/pkg/kafka"
	applogger "SolarAPI/pkg/logger"
	"SolarAPI/pkg/metrics"
	"SolarAPI/pkg/server"
)

// Version is the reported application version.
const Version = "1.0.0"

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the schema.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements()); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache backend. Redis when enabled, in-process
// memory cache otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Redis.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithAddr(cfg.Redis.Host, cfg.Redis.Port),
			cache.WithAuth(cfg.Redis.Password, cfg.Redis.DB),
			cache.WithPrefix("solar"),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is
// disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.Producer.RequiredAcks),
		pkgkafka.WithBatch(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideEventPublisher wraps the producer as an analysis event publisher.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.EventPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Kafka.EventsTopic)
}

// ProvideKafkaConsumer creates a Kafka consumer, or nil when Kafka is
// disabled.
func ProvideKafkaConsumer(cfg *config.Config, l *applogger.Logger) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(l,
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideUserRepository creates the ClickHouse user repository.
func ProvideUserRepository(ch *pkgch.Client, l *applogger.Logger) repository.UserRepository {
	return internalrepo.NewCHUserRepository(ch, l)
}

// ProvideTaskRepository creates the ClickHouse task repository.
func ProvideTaskRepository(ch *pkgch.Client, l *applogger.Logger) repository.TaskRepository {
	return internalrepo.NewCHTaskRepository(ch, l)
}

// ProvideSalesStore creates the ClickHouse sales store.
func ProvideSalesStore(ch *pkgch.Client, l *applogger.Logger) repository.SalesStore {
	return internalrepo.NewCHSalesStore(ch, l)
}

// ProvideCalculator creates the statistics calculator with configured bounds.
func ProvideCalculator(cfg *config.Config) *analytics.Calculator {
	return analytics.NewCalculator(analytics.SampleBounds{
		Min: cfg.Analytics.SampleMin,
		Max: cfg.Analytics.SampleMax,
	})
}

// ProvideAnalyticsService creates the analytics orchestrator.
func ProvideAnalyticsService(
	l *applogger.Logger,
	calc *analytics.Calculator,
	m repository.Metrics,
	events repository.EventPublisher,
	cacheSvc cache.Service,
	cfg *config.Config,
) *usecase.AnalyticsService {
	return usecase.NewAnalyticsService(l, calc, m, events, cacheSvc,
		cfg.Analytics.TrendHorizon,
		cfg.Analytics.ChartPoints,
		cfg.Analytics.DemoDays,
		cfg.Analytics.ChartTTL,
	)
}

// ProvideUserService creates the user use case.
func ProvideUserService(l *applogger.Logger, repo repository.UserRepository, cacheSvc cache.Service, cfg *config.Config) *usecase.UserService {
	ttl := cfg.Redis.UserTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return usecase.NewUserService(l, repo, cacheSvc, ttl)
}

// ProvideTaskService creates the task use case.
func ProvideTaskService(l *applogger.Logger, tasks repository.TaskRepository, users repository.UserRepository) *usecase.TaskService {
	return usecase.NewTaskService(l, tasks, users)
}

// ProvideSalesIngestHandler creates the sales topic message handler.
func ProvideSalesIngestHandler(l *applogger.Logger, cfg *config.Config, store repository.SalesStore, m repository.Metrics) *usecase.SalesIngestHandler {
	return usecase.NewSalesIngestHandler(l, cfg.Kafka.SalesTopic, store, m)
}

// ProvideRouter aggregates all HTTP handlers.
func ProvideRouter(
	l *applogger.Logger,
	analyticsSvc *usecase.AnalyticsService,
	users *usecase.UserService,
	tasks *usecase.TaskService,
	chClient *pkgch.Client,
) *api.Router {
	return api.NewRouter(
		api.NewMetaHandler(Version, map[string]api.HealthChecker{
			"clickhouse": chClient,
		}),
		api.NewCalculatorHandler(l),
		api.NewDataHandler(l, analyticsSvc),
		api.NewLiveChartHandler(l, time.Second),
		api.NewUsersHandler(l, users),
		api.NewTasksHandler(l, tasks),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	router *api.Router,
	consumer *pkgkafka.Consumer,
	ingest *usecase.SalesIngestHandler,
	chClient *pkgch.Client,
	cacheSvc cache.Service,
	publisher repository.EventPublisher,
) *server.App {
	return server.New(cfg, l, router, consumer, ingest, chClient, cacheSvc, publisher)
}
