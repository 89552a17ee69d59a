// Package testutil wires go-sqlmock behind the GORM MySQL dialector for tests.
package testutil

import (
	"database/sql"
	"testing"

	"patient-management-service/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMockDB returns a GORM handle backed by sqlmock plus the raw *sql.DB, so
// tests can close the pool to simulate an unreachable database.
func NewMockDB(t testing.TB) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), logger.Discard)
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	return db, sqlDB, mock
}

// PatientColumns is the column set of SELECT * FROM patients.
var PatientColumns = []string{"patient_id", "full_name", "contact_number", "insurance_info", "billing_address", "patient_type"}

// ListingColumns is the column set of the patient listing join.
var ListingColumns = []string{
	"patient_id", "full_name", "contact_number", "insurance_info", "billing_address", "patient_type",
	"service_name", "service_quantity", "service_cost",
	"medicine_name", "medicine_quantity", "medicine_cost",
	"room_number", "bed_number", "room_quantity", "room_cost",
}

var (
	ServiceColumns  = []string{"service_id", "patient_id", "service_name", "quantity", "cost"}
	MedicineColumns = []string{"medicine_id", "patient_id", "medicine_name", "quantity", "cost"}
	RoomColumns     = []string{"room_id", "patient_id", "room_number", "bed_number", "quantity", "cost"}
)

// Query patterns, matched by sqlmock's default regexp matcher.
const (
	ListingQuery  = `FROM patients p LEFT JOIN services s ON p.patient_id = s.patient_id`
	PatientQuery  = "SELECT \\* FROM `patients` WHERE patient_id = \\?"
	ServiceQuery  = "SELECT \\* FROM `services` WHERE patient_id = \\?"
	MedicineQuery = "SELECT \\* FROM `medicines` WHERE patient_id = \\?"
	RoomQuery     = "SELECT \\* FROM `rooms` WHERE patient_id = \\?"
	AuditInsert   = "INSERT INTO `audit_logs`"
)
