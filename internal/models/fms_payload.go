package models

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// FMSPayload is the document POSTed to the FMS for one patient.
type FMSPayload struct {
	Patient   FMSPatient    `json:"patient"`
	Services  []FMSService  `json:"services"`
	Medicines []FMSMedicine `json:"medicines"`
	Rooms     []FMSRoom     `json:"rooms"`
}

type FMSPatient struct {
	PatientID      uint        `json:"patient_id"`
	Name           string      `json:"name"`
	ContactNumber  string      `json:"contact_number"`
	PatientType    PatientType `json:"patient_type"`
	BillingAddress string      `json:"billing_address"`
	InsuranceInfo  string      `json:"insurance_info"`
}

type FMSService struct {
	ServiceID   uint    `json:"service_id"`
	PatientID   uint    `json:"patient_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	Cost        float64 `json:"cost"`
}

type FMSMedicine struct {
	MedicineID   uint    `json:"medicine_id"`
	PatientID    uint    `json:"patient_id"`
	MedicineName string  `json:"medicine_name"`
	Quantity     int     `json:"quantity"`
	Cost         float64 `json:"cost"`
}

type FMSRoom struct {
	RoomID     uint    `json:"room_id"`
	PatientID  uint    `json:"patient_id"`
	RoomNumber string  `json:"room_number"`
	BedNumber  string  `json:"bed_number"`
	Quantity   int     `json:"quantity"`
	Cost       float64 `json:"cost"`
}

// NewFMSPayload reshapes a patient and its line items for transport. Costs
// lose their fixed-point representation here and quantities are truncated to
// whole units; the FMS expects JSON numbers.
func NewFMSPayload(p *Patient, services []Service, medicines []Medicine, rooms []RoomCharge) (*FMSPayload, error) {
	payload := &FMSPayload{
		Patient: FMSPatient{
			PatientID:      p.PatientID,
			Name:           p.FullName,
			ContactNumber:  p.ContactNumber,
			PatientType:    p.PatientType,
			BillingAddress: p.BillingAddress,
			InsuranceInfo:  p.InsuranceInfo,
		},
		Services:  make([]FMSService, 0, len(services)),
		Medicines: make([]FMSMedicine, 0, len(medicines)),
		Rooms:     make([]FMSRoom, 0, len(rooms)),
	}

	for i := range services {
		cost, err := CostToFloat(&services[i].Cost)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", services[i].ServiceID, err)
		}
		qty, err := QuantityToInt(&services[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", services[i].ServiceID, err)
		}
		payload.Services = append(payload.Services, FMSService{
			ServiceID:   services[i].ServiceID,
			PatientID:   services[i].PatientID,
			ServiceName: services[i].ServiceName,
			Quantity:    qty,
			Cost:        cost,
		})
	}

	for i := range medicines {
		cost, err := CostToFloat(&medicines[i].Cost)
		if err != nil {
			return nil, fmt.Errorf("medicine %d: %w", medicines[i].MedicineID, err)
		}
		qty, err := QuantityToInt(&medicines[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("medicine %d: %w", medicines[i].MedicineID, err)
		}
		payload.Medicines = append(payload.Medicines, FMSMedicine{
			MedicineID:   medicines[i].MedicineID,
			PatientID:    medicines[i].PatientID,
			MedicineName: medicines[i].MedicineName,
			Quantity:     qty,
			Cost:         cost,
		})
	}

	for i := range rooms {
		cost, err := CostToFloat(&rooms[i].Cost)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", rooms[i].RoomID, err)
		}
		qty, err := QuantityToInt(&rooms[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", rooms[i].RoomID, err)
		}
		payload.Rooms = append(payload.Rooms, FMSRoom{
			RoomID:     rooms[i].RoomID,
			PatientID:  rooms[i].PatientID,
			RoomNumber: rooms[i].RoomNumber,
			BedNumber:  rooms[i].BedNumber,
			Quantity:   qty,
			Cost:       cost,
		})
	}

	return payload, nil
}

// CostToFloat converts a stored DECIMAL cost to float64.
func CostToFloat(d *apd.Decimal) (float64, error) {
	f, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("convert cost %s: %w", d.Text('f'), err)
	}
	return f, nil
}

// QuantityToInt truncates a stored quantity toward zero.
func QuantityToInt(d *apd.Decimal) (int, error) {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	n, err := integ.Int64()
	if err != nil {
		return 0, fmt.Errorf("convert quantity %s: %w", d.Text('f'), err)
	}
	return int(n), nil
}
