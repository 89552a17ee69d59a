package repository

import (
	"patient-management-service/internal/models"

	"gorm.io/gorm"
)

// LineItemRepository reads the billing line items owned by a patient.
// Each method is an independent query; callers get no snapshot across them.
type LineItemRepository struct {
	db *gorm.DB
}

func NewLineItemRepo(db *gorm.DB) *LineItemRepository {
	return &LineItemRepository{db: db}
}

func (r *LineItemRepository) GetServicesByPatientID(patientID uint) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("patient_id = ?", patientID).Find(&services).Error
	return services, err
}

func (r *LineItemRepository) GetMedicinesByPatientID(patientID uint) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := r.db.Where("patient_id = ?", patientID).Find(&medicines).Error
	return medicines, err
}

func (r *LineItemRepository) GetRoomsByPatientID(patientID uint) ([]models.RoomCharge, error) {
	var rooms []models.RoomCharge
	err := r.db.Where("patient_id = ?", patientID).Find(&rooms).Error
	return rooms, err
}
