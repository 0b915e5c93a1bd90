package database

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"users", "properties", "task_checklists", "tasks", "verifications", "rewards", "blockchain_records", "banners", "admin_tasks"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing after migration", table)
		}
	}
}

func TestSeedCategoriesIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := SeedCategories(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedCategories(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var cats, risks int64
	db.Model(&models.TaskCategory{}).Count(&cats)
	db.Model(&models.RiskCategory{}).Count(&risks)
	if int(cats) != len(catalog.CategoryCodes()) {
		t.Errorf("task categories = %d, want %d", cats, len(catalog.CategoryCodes()))
	}
	if int(risks) != len(catalog.RiskCategoryCodes()) {
		t.Errorf("risk categories = %d, want %d", risks, len(catalog.RiskCategoryCodes()))
	}
}
