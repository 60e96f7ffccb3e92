package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog/mongocatalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/db"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
	"github.com/angelmondragon/swipeshop-backend/pkg/migrate"
	pkgmongo "github.com/angelmondragon/swipeshop-backend/pkg/mongo"
)

type options struct {
	cmd     string
	dir     string
	name    string
	version string
}

func main() {
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: up|down|status|version|create|validate")
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "migrations directory for create and validate")
	flag.StringVar(&opts.name, "name", "", "migration name (for create)")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "migrate"})
	if err := run(context.Background(), logg, opts); err != nil {
		logg.Error(context.Background(), "migrate failed", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logg *logger.Logger, opts options) error {
	// create and validate work on the source tree and need no config
	switch opts.cmd {
	case "create":
		if opts.name == "" {
			return errors.New("missing -name for create")
		}
		path, err := migrate.CreateSQLMigration(opts.dir, opts.name, time.Now())
		if err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		fmt.Println("created migration:", path)
		return nil
	case "validate":
		if err := migrate.ValidateDir(opts.dir); err != nil {
			return fmt.Errorf("validate migrations: %w", err)
		}
		fmt.Println("migration validation passed")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, logger.Fields{
		"env":     cfg.App.Env,
		"cmd":     opts.cmd,
		"backend": cfg.Store.Backend,
	})

	if cfg.Store.UsesMongo() {
		return migrateMongo(ctx, cfg, logg, opts.cmd)
	}
	return migrateSQL(ctx, cfg, logg, opts)
}

// migrateMongo only understands up, which builds the catalog indexes.
func migrateMongo(ctx context.Context, cfg *config.Config, logg *logger.Logger, cmd string) error {
	if cmd != "up" {
		return fmt.Errorf("command %q is not supported for the mongo backend", cmd)
	}
	client, err := pkgmongo.New(ctx, cfg.Mongo, logg)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Close(ctx)

	if err := mongocatalog.NewRepository(client.Database()).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure catalog indexes: %w", err)
	}
	logg.Info(ctx, "catalog indexes ensured")
	return nil
}

func migrateSQL(ctx context.Context, cfg *config.Config, logg *logger.Logger, opts options) error {
	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer client.Close()

	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}
	dialect := client.Dialect()
	ctx = logg.WithField(ctx, "dialect", dialect)

	switch opts.cmd {
	case "up":
		// embedded migrations are postgres SQL; other dialects use the gorm models
		if dialect != "postgres" {
			err = migrate.AutoMigrateModels(client.DB())
		} else {
			err = migrate.Run(ctx, sqlDB, dialect, "up")
		}
	case "down", "status":
		err = migrate.Run(ctx, sqlDB, dialect, opts.cmd)
	case "version":
		if opts.version == "" {
			return errors.New("missing -version for version command")
		}
		err = migrate.MigrateToVersion(ctx, sqlDB, dialect, opts.version)
	default:
		return fmt.Errorf("unknown -cmd value %q", opts.cmd)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", opts.cmd, err)
	}
	logg.Info(ctx, "migrate complete")
	return nil
}
