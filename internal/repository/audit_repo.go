package repository

import (
	"patient-management-service/internal/models"

	"gorm.io/gorm"
)

const ActionFMSForward = "fms_forward"

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(patientID *uint, action string, details string) error {
	log := &models.AuditLog{
		PatientID: patientID,
		Action:    action,
		Details:   details,
	}
	return r.db.Create(log).Error
}
