package models

import "github.com/cockroachdb/apd/v3"

// Line item quantities and costs scan through apd.Decimal: MySQL may report
// either column as DECIMAL text, an integer or a float depending on the schema.

// Service is a billed procedure or service line item.
type Service struct {
	ServiceID   uint        `gorm:"column:service_id;primaryKey" json:"service_id"`
	PatientID   uint        `gorm:"not null;index" json:"patient_id"`
	ServiceName string      `gorm:"size:255;not null" json:"service_name"`
	Quantity    apd.Decimal `gorm:"type:int;not null" json:"quantity"`
	Cost        apd.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
}

func (Service) TableName() string {
	return "services"
}

// Medicine is a dispensed medicine line item.
type Medicine struct {
	MedicineID   uint        `gorm:"column:medicine_id;primaryKey" json:"medicine_id"`
	PatientID    uint        `gorm:"not null;index" json:"patient_id"`
	MedicineName string      `gorm:"size:255;not null" json:"medicine_name"`
	Quantity     apd.Decimal `gorm:"type:int;not null" json:"quantity"`
	Cost         apd.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// RoomCharge is a room/bed occupancy line item, stored in the rooms table.
type RoomCharge struct {
	RoomID     uint        `gorm:"column:room_id;primaryKey" json:"room_id"`
	PatientID  uint        `gorm:"not null;index" json:"patient_id"`
	RoomNumber string      `gorm:"size:50;not null" json:"room_number"`
	BedNumber  string      `gorm:"size:50" json:"bed_number"`
	Quantity   apd.Decimal `gorm:"type:int;not null" json:"quantity"`
	Cost       apd.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
}

func (RoomCharge) TableName() string {
	return "rooms"
}
