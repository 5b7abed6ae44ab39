package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/ilkhanul13/portfolio101/internal/cache"
	"github.com/ilkhanul13/portfolio101/internal/config"
	"github.com/ilkhanul13/portfolio101/internal/event"
	handler "github.com/ilkhanul13/portfolio101/internal/handler/http"
	"github.com/ilkhanul13/portfolio101/internal/repository"
	pgrepo "github.com/ilkhanul13/portfolio101/internal/repository/postgres"
	"github.com/ilkhanul13/portfolio101/internal/sender"
	mocksender "github.com/ilkhanul13/portfolio101/internal/sender/mock"
	smtpsender "github.com/ilkhanul13/portfolio101/internal/sender/smtp"
	"github.com/ilkhanul13/portfolio101/internal/service"
	"github.com/ilkhanul13/portfolio101/migrations"
	"github.com/ilkhanul13/portfolio101/pkg/database"
	"github.com/ilkhanul13/portfolio101/pkg/health"
	pkgkafka "github.com/ilkhanul13/portfolio101/pkg/kafka"
	"github.com/ilkhanul13/portfolio101/pkg/middleware"
)

// App wires together all dependencies and runs the portfolio API.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *redis.Client
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Kafka producer.
	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Testimonial store. Runs without one: the site then serves projects and
	// contact only and reports the testimonial feature as unavailable.
	var (
		pool *pgxpool.Pool
		repo repository.TestimonialRepository
	)
	if cfg.StoreConfigured() {
		pgCfg := database.DefaultPostgresConfig()
		pgCfg.Host = cfg.PostgresHost
		pgCfg.Port = cfg.PostgresPort
		pgCfg.User = cfg.PostgresUser
		pgCfg.Password = cfg.PostgresPassword
		pgCfg.DBName = cfg.PostgresDB
		pgCfg.SSLMode = cfg.PostgresSSLMode

		var err error
		pool, err = database.NewPostgresPool(ctx, &pgCfg, logger)
		if err != nil {
			producer.Close()
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		// A migration failure is not fatal: restricted deployments manage the
		// schema out of band and may not grant DDL to this role. The probe
		// endpoint reports such stores as available but misconfigured.
		if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
			logger.Warn("migrations failed, continuing with existing schema",
				slog.String("error", err.Error()),
			)
		}

		prometheus.MustRegister(database.NewPoolStatsCollector(pool, "portfolio"))

		repo = pgrepo.NewTestimonialRepository(pool)
	} else {
		logger.Info("no testimonial store configured, feature disabled")
	}

	// Redis stats cache. Optional; a miss here only costs extra store reads.
	var (
		rdb        *redis.Client
		statsCache service.StatsCache
	)
	if cfg.CacheConfigured() {
		var err error
		rdb, err = database.NewRedisClient(ctx, database.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, stats caching disabled",
				slog.String("error", err.Error()),
			)
		} else {
			statsCache = cache.NewStatsCache(rdb, cfg.StatsCacheTTL)
			logger.Info("connected to Redis", slog.String("addr", fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort)))
		}
	}

	// Contact sender. Without SMTP the mock sender logs messages instead.
	var contactSender sender.Sender
	if cfg.SMTPConfigured() {
		contactSender = smtpsender.NewSender(smtpsender.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
			To:       cfg.MailTo,
		})
	} else {
		contactSender = mocksender.NewSender(logger)
		logger.Info("no SMTP configured, using mock contact sender")
	}

	// Build the dependency graph.
	eventProducer := event.NewProducer(producer, logger)
	availabilityService := service.NewAvailabilityService(repo, logger)

	deps := handler.RouterDeps{
		Availability:    availabilityService,
		Contact:         service.NewContactService(contactSender, eventProducer, logger),
		Logger:          logger,
		AdminToken:      cfg.AdminToken,
		StoreConfigured: cfg.StoreConfigured(),
	}
	if repo != nil {
		deps.Testimonials = service.NewTestimonialService(repo, eventProducer, logger)
		deps.Stats = service.NewStatsService(repo, statsCache, cfg.StatsSampleLimit(), logger)
		deps.Moderation = service.NewModerationService(repo, statsCache, eventProducer, logger)
	}

	// Health checks.
	healthHandler := health.NewHandler()
	if pool != nil {
		healthHandler.Register("postgres", func(ctx context.Context) error {
			return pool.Ping(ctx)
		})
	}
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	deps.Health = healthHandler

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment
	deps.CORS = corsCfg

	// One probe at startup so operators see the store state in the boot log.
	if available := availabilityService.Check(ctx); available {
		logger.Info("testimonial store available")
	} else {
		logger.Warn("testimonial feature unavailable")
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      handler.NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		rdb:        rdb,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if a.pool != nil {
		a.pool.Close()
	}

	a.logger.Info("application shutdown complete")
	return nil
}
