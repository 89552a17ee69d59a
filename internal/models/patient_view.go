package models

import "github.com/cockroachdb/apd/v3"

// PatientView is one row of the patient listing: a patient joined with at most
// one service, medicine and room. Relation columns are nil/invalid when the
// patient has no row on that side of the join.
type PatientView struct {
	PatientID      uint        `json:"patient_id"`
	FullName       string      `json:"full_name"`
	ContactNumber  *string     `json:"contact_number"`
	InsuranceInfo  *string     `json:"insurance_info"`
	BillingAddress *string     `json:"billing_address"`
	PatientType    PatientType `json:"patient_type"`

	ServiceName     *string         `json:"service_name"`
	ServiceQuantity apd.NullDecimal `json:"service_quantity"`
	ServiceCost     apd.NullDecimal `json:"service_cost"`

	MedicineName     *string         `json:"medicine_name"`
	MedicineQuantity apd.NullDecimal `json:"medicine_quantity"`
	MedicineCost     apd.NullDecimal `json:"medicine_cost"`

	RoomNumber   *string         `json:"room_number"`
	BedNumber    *string         `json:"bed_number"`
	RoomQuantity apd.NullDecimal `json:"room_quantity"`
	RoomCost     apd.NullDecimal `json:"room_cost"`
}
