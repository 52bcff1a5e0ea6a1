package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	auth_service "blog-platform/internal/application/service/auth"
	post_service "blog-platform/internal/application/service/post"
	user_service "blog-platform/internal/application/service/user"
	"blog-platform/internal/infrastructure/config"
	http_server "blog-platform/internal/infrastructure/inbound/http"
	auth_http "blog-platform/internal/infrastructure/inbound/http/auth"
	metrics_server "blog-platform/internal/infrastructure/inbound/metrics"
	"blog-platform/internal/infrastructure/logger"
	prometheus_metrics "blog-platform/internal/infrastructure/outbound/metrics/prometheus"
	"blog-platform/internal/infrastructure/outbound/password/bcrypt"
	"blog-platform/internal/infrastructure/outbound/render/markdown"
	post_postgres "blog-platform/internal/infrastructure/outbound/repository/post/postgres"
	"blog-platform/internal/infrastructure/outbound/repository/postgres"
	"blog-platform/internal/infrastructure/outbound/repository/postgres/migrate"
	user_postgres "blog-platform/internal/infrastructure/outbound/repository/user/postgres"
	session_redis "blog-platform/internal/infrastructure/outbound/session/redis"
)

func main() {
	cfg := config.MustLoad()
	dsn := cfg.Database.DSN()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Database.AutoMigrate {
		if err := migrate.Up(dsn, cfg.Database.MigrationsPath, log); err != nil {
			log.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := session_redis.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	sessions := session_redis.NewSessionStore(redisClient, cfg.Session.TTL, log, metrics)
	hasher := bcrypt.NewHasher(bcrypt.DefaultCost)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)

	postService := post_service.NewPostService(postRepo, markdown.NewRenderer(), log, metrics)
	userService := user_service.NewUserService(userRepo, postRepo, unitOfWork, hasher, log, metrics)
	authService := auth_service.NewAuthService(userRepo, hasher, log, metrics)

	router := http_server.NewRouter(http_server.Dependencies{
		PostService: postService,
		UserService: userService,
		AuthService: authService,
		Sessions:    sessions,
		Cookie: auth_http.CookieSettings{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		ProtectWrites:  cfg.HTTPServer.ProtectWrites,
		HealthCheck:    pool.Ping,
		Metrics:        metrics,
		Log:            log,
	})
	httpServer := http_server.NewServer(
		router,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		log,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
