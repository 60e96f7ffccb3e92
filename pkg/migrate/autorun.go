package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/db"
	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
	"gorm.io/gorm"
)

// MaybeRunDev migrates the SQL store on boot when the app is running in dev
// mode and the auto-migrate flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dialect": client.Dialect()})

	// the goose migrations target postgres; sqlite gets the gorm schema
	if client.Dialect() != "postgres" {
		logg.Info(ctx, "running gorm auto-migrate (dev auto-run)")
		return AutoMigrateModels(client.DB())
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running goose migrations (dev auto-run)")
	if err := Run(ctx, sqlDB, client.Dialect(), "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}

// AutoMigrateModels creates the catalog and reference tables from the gorm models.
func AutoMigrateModels(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.CatalogProduct{},
		&models.ProductCategory{},
		&models.ProductColor{},
		&models.ProductReference{},
	); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}
	return nil
}
