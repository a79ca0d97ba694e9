package database

import (
	"fmt"

	"gorm.io/gorm"

	"recetario/internal/model"
)

// Migrate brings the schema up to date for every persisted model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}
