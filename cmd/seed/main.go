package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/catalog/mongocatalog"
	"github.com/angelmondragon/swipeshop-backend/internal/catalog/sqlcatalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/auth"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/db"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
	"github.com/angelmondragon/swipeshop-backend/pkg/migrate"
	pkgmongo "github.com/angelmondragon/swipeshop-backend/pkg/mongo"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred closers finish before exit.
func run(args []string) int {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := flags.String("file", "cmd/seed/products.json", "JSON array of products to insert")
	mintFor := flags.String("mint-token", "", "print an access token for this user id and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if failed(context.Background(), logg, "config", err) {
		return 1
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"backend": cfg.Store.Backend,
	})

	if *mintFor != "" {
		token, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{UserID: *mintFor})
		if failed(ctx, logg, "token", err) {
			return 1
		}
		fmt.Println(token)
		return 0
	}

	items, err := readFixture(*file)
	if failed(ctx, logg, "fixture", err) {
		return 1
	}

	target, closeTarget, err := openCatalog(ctx, cfg, logg)
	if failed(ctx, logg, "catalog", err) {
		return 1
	}
	defer closeTarget()

	inserted, skipped, err := insertItems(ctx, target, items)
	if err != nil {
		logg.Error(ctx, "seed.insert.failed", err)
		return 1
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"inserted": inserted,
		"skipped":  skipped,
	}), "seed.completed")
	return 0
}

func readFixture(path string) ([]catalog.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseFixture(f)
}

type itemCreator interface {
	Create(ctx context.Context, item *catalog.Item) error
}

// insertItems skips products that already exist and stops at the first
// other failure.
func insertItems(ctx context.Context, target itemCreator, items []catalog.Item) (inserted, skipped int, err error) {
	for i := range items {
		switch err := target.Create(ctx, &items[i]); {
		case err == nil:
			inserted++
		case errors.Is(err, catalog.ErrDuplicate):
			skipped++
		default:
			return inserted, skipped, fmt.Errorf("insert product %s: %w", items[i].ID, err)
		}
	}
	return inserted, skipped, nil
}

func openCatalog(ctx context.Context, cfg *config.Config, logg *logger.Logger) (catalog.Catalog, func(), error) {
	if cfg.Store.UsesMongo() {
		client, err := pkgmongo.New(ctx, cfg.Mongo, logg)
		if err != nil {
			return nil, nil, err
		}
		repo := mongocatalog.NewRepository(client.Database())
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, nil, err
		}
		return repo, func() { _ = client.Close(context.Background()) }, nil
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, nil, err
	}
	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		_ = dbClient.Close()
		return nil, nil, err
	}
	return sqlcatalog.NewRepository(dbClient.DB()), func() { _ = dbClient.Close() }, nil
}

func failed(ctx context.Context, logg *logger.Logger, resource string, err error) bool {
	if err == nil {
		return false
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	return true
}
