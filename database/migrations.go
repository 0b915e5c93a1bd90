package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
)

// Migrate runs AutoMigrate for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.RefreshToken{},
		&models.RevokedToken{},
		&models.User{},
		&models.TaskCategory{},
		&models.RiskCategory{},
		&models.Property{},
		&models.TaskChecklist{},
		&models.Task{},
		&models.Verification{},
		&models.Reward{},
		&models.BlockchainRecord{},
		&models.Banner{},
		&models.AdminTask{},
	)
}

var categoryNames = map[string]string{
	catalog.CategoryFireSafety:         "Fire Safety",
	catalog.CategoryWaterDamage:        "Water Damage",
	catalog.CategorySecurity:           "Security",
	catalog.CategoryElectrical:         "Electrical",
	catalog.CategoryStructural:         "Structural",
	catalog.CategoryWeatherProtection:  "Weather Protection",
	catalog.CategoryGeneralMaintenance: "General Maintenance",
}

var riskCategoryNames = map[string]string{
	catalog.RiskFire:       "Fire",
	catalog.RiskWater:      "Water",
	catalog.RiskTheft:      "Theft",
	catalog.RiskLiability:  "Liability",
	catalog.RiskStructural: "Structural",
	catalog.RiskWeather:    "Weather",
}

// SeedCategories upserts the reference rows for the catalog's closed code
// sets. Idempotent: existing rows are left untouched.
func SeedCategories(db *gorm.DB) error {
	for _, code := range catalog.CategoryCodes() {
		row := models.TaskCategory{Code: code, Name: categoryNames[code]}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed task category %s: %w", code, err)
		}
	}
	for _, code := range catalog.RiskCategoryCodes() {
		row := models.RiskCategory{Code: code, Name: riskCategoryNames[code]}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed risk category %s: %w", code, err)
		}
	}
	return nil
}
