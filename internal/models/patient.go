package models

// PatientType is the admission category recorded at intake.
type PatientType string

const (
	PatientTypeInpatient  PatientType = "inpatient"
	PatientTypeOutpatient PatientType = "outpatient"
)

// Patient represents the patients table. Rows are written by the intake
// system; this service only reads them.
type Patient struct {
	PatientID      uint        `gorm:"column:patient_id;primaryKey" json:"patient_id"`
	FullName       string      `gorm:"size:255;not null" json:"full_name"`
	ContactNumber  string      `gorm:"size:50" json:"contact_number"`
	InsuranceInfo  string      `gorm:"size:255" json:"insurance_info"`
	BillingAddress string      `gorm:"size:255" json:"billing_address"`
	PatientType    PatientType `gorm:"type:enum('inpatient','outpatient');default:'outpatient'" json:"patient_type"`

	// Relationships
	Services  []Service    `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Medicines []Medicine   `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Rooms     []RoomCharge `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
