package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	if err := ValidateEmbedded(); err != nil {
		t.Fatalf("embedded migrations invalid: %v", err)
	}
}

func TestCatalogMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_products.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CHECK (rank >= 0 AND rank <= 32767)",
		"CREATE INDEX IF NOT EXISTS idx_products_rank_id ON products (rank DESC, id DESC)",
		"CREATE TABLE IF NOT EXISTS product_categories",
		"CREATE TABLE IF NOT EXISTS product_colors",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS products",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestReferencesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_product_references.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS product_references",
		"id BIGSERIAL PRIMARY KEY",
		"UNIQUE (user_id, category, product_id)",
		"ON product_references (user_id, category, id)",
		"DROP TABLE IF EXISTS product_references",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateContentRejectsUnbalancedStatements(t *testing.T) {
	txt := "-- +goose Up\n-- +goose StatementBegin\nSELECT 1;\n-- +goose Down\n"
	if err := validateContent("x.sql", txt); err == nil {
		t.Fatal("expected unbalanced statement markers to fail")
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	path, err := CreateSQLMigration(dir, "Add Product Brand!", now)
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if filepath.Base(path) != "20250301120000_add_product_brand.sql" {
		t.Fatalf("unexpected filename %s", filepath.Base(path))
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration should validate: %v", err)
	}
	if _, err := CreateSQLMigration(dir, "add product brand", now); err == nil {
		t.Fatal("expected duplicate migration to fail")
	}
	if _, err := CreateSQLMigration(dir, "!!!", now); err == nil {
		t.Fatal("expected empty sanitized name to fail")
	}
}

func TestAutoMigrateModels(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:automigrate?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrateModels(conn); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	for _, model := range []any{&models.CatalogProduct{}, &models.ProductReference{}} {
		if !conn.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %s", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
