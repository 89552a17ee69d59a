package database

import (
	"fmt"

	"patient-management-service/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema the service reads from.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Patient{},
		&models.Service{},
		&models.Medicine{},
		&models.RoomCharge{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
