// Database migration tool for the MEGUI backend.
//
// Usage:
//
//	migrate [flags] <command>
//
// Commands:
//
//	up              Apply all pending migrations
//	down            Roll back the most recent migration
//	version         Print the current migration version
//	force <v>       Force the version without running migrations
//	steps <n>       Apply n migrations (negative rolls back)
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/megui/backend/internal/infrastructure/config"
	"github.com/megui/backend/internal/infrastructure/logger"
)

const defaultMigrationsPath = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}
	if _, err := os.Stat(absPath); err != nil {
		log.Fatal("Migrations directory not found", zap.String("path", absPath), zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatal("Database ping failed", zap.Error(err))
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Failed to create migration driver", zap.Error(err))
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}

	switch command {
	case "up":
		runAndReport(log, m, m.Up, "All migrations applied")
	case "down":
		runAndReport(log, m, func() error { return m.Steps(-1) }, "Rolled back one migration")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("No migrations applied yet")
			return
		}
		if err != nil {
			log.Fatal("Failed to read migration version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version argument", zap.String("arg", args[1]), zap.Error(err))
		}
		if err := m.Force(version); err != nil {
			log.Fatal("Failed to force version", zap.Error(err))
		}
		log.Info("Version forced", zap.Int("version", version))
	case "steps":
		if len(args) < 2 {
			log.Fatal("steps requires a count argument")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid steps argument", zap.String("arg", args[1]), zap.Error(err))
		}
		runAndReport(log, m, func() error { return m.Steps(n) }, fmt.Sprintf("Applied %d migration step(s)", n))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runAndReport(log *zap.Logger, m *migrate.Migrate, run func() error, success string) {
	err := run()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Database is up to date")
		return
	}
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	version, dirty, verr := m.Version()
	if verr == nil {
		log.Info(success, zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	}
	log.Info(success)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [flags] <command>

Commands:
  up              Apply all pending migrations
  down            Roll back the most recent migration
  version         Print the current migration version
  force <v>       Force the version without running migrations
  steps <n>       Apply n migrations (negative rolls back)

Flags:
  -path string       Path to migrations directory (default: ./migrations)
  -log-level string  Log level (default: info)`)
}
