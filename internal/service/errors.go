package service

import (
	"errors"

	"patient-management-service/internal/database"
	"patient-management-service/internal/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
)

// Failure taxonomy shared by the patient and FMS flows. Handlers dispatch on
// these with errors.Is.
var (
	ErrConnectionFailed = database.ErrConnectionFailed
	ErrQueryFailed      = errors.New("database query failed")
	ErrPatientNotFound  = repository.ErrPatientNotFound
	ErrDeliveryFailed   = errors.New("fms delivery failed")
	ErrUnexpected       = errors.New("unexpected error")
)

// Outcome is the result of forwarding one patient to the FMS.
type Outcome int

const (
	OutcomeDelivered Outcome = iota
	OutcomeNotFound
	OutcomeDatabaseError
	OutcomeDeliveryFailed
	OutcomeUnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDatabaseError:
		return "database_error"
	case OutcomeDeliveryFailed:
		return "delivery_failed"
	default:
		return "unexpected_error"
	}
}

// OutcomeOf classifies an error returned by the forward flow.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeDelivered
	case errors.Is(err, ErrPatientNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrConnectionFailed), errors.Is(err, ErrQueryFailed):
		return OutcomeDatabaseError
	case errors.Is(err, ErrDeliveryFailed):
		return OutcomeDeliveryFailed
	default:
		return OutcomeUnexpectedError
	}
}

// withMySQLError attaches the server error number when the driver reported one.
func withMySQLError(evt *zerolog.Event, err error) *zerolog.Event {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		evt = evt.Uint16("mysql_errno", myErr.Number)
	}
	return evt.Err(err)
}
