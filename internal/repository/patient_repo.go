package repository

import (
	"errors"

	"patient-management-service/internal/models"

	"gorm.io/gorm"
)

// ErrPatientNotFound is returned when no patient matches the requested id.
var ErrPatientNotFound = errors.New("patient not found")

// patientListingQuery joins every patient with its line items. Patients
// without services, medicines or rooms still produce exactly one row.
const patientListingQuery = `
	SELECT
		p.patient_id, p.full_name, p.contact_number, p.insurance_info, p.billing_address, p.patient_type,
		s.service_name, s.quantity AS service_quantity, s.cost AS service_cost,
		m.medicine_name, m.quantity AS medicine_quantity, m.cost AS medicine_cost,
		r.room_number, r.bed_number, r.quantity AS room_quantity, r.cost AS room_cost
	FROM
		patients p
	LEFT JOIN services s ON p.patient_id = s.patient_id
	LEFT JOIN medicines m ON p.patient_id = m.patient_id
	LEFT JOIN rooms r ON p.patient_id = r.patient_id
`

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetAllPatientViews returns the flattened patient listing
func (r *PatientRepository) GetAllPatientViews() ([]models.PatientView, error) {
	var views []models.PatientView
	err := r.db.Raw(patientListingQuery).Scan(&views).Error
	return views, err
}

// GetPatientByID retrieves a patient by ID
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}
