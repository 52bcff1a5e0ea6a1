package main

import (
	"flag"
	"log/slog"
	"os"

	"blog-platform/internal/infrastructure/config"
	"blog-platform/internal/infrastructure/logger"
	"blog-platform/internal/infrastructure/outbound/repository/postgres/migrate"
)

func main() {
	var direction string
	var steps int
	var path string
	flag.StringVar(&direction, "direction", "up", "migration direction: up | down")
	flag.IntVar(&steps, "steps", 1, "number of migrations to roll back (down only)")
	flag.StringVar(&path, "path", "", "migrations directory (defaults to database.migrations_path)")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if path == "" {
		path = cfg.Database.MigrationsPath
	}
	dsn := cfg.Database.DSN()

	var err error
	switch direction {
	case "up":
		err = migrate.Up(dsn, path, log)
	case "down":
		if steps < 1 {
			log.Error("steps must be positive", slog.Int("steps", steps))
			os.Exit(2)
		}
		err = migrate.Down(dsn, path, steps, log)
	default:
		log.Error("Unknown migration direction", slog.String("direction", direction))
		os.Exit(2)
	}
	if err != nil {
		log.Error("Migration failed", slog.String("direction", direction), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
