package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"patient-management-service/internal/models"
	"patient-management-service/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PayloadSender delivers a payload and reports the HTTP status it got back.
type PayloadSender interface {
	Send(ctx context.Context, payload *models.FMSPayload) (int, error)
}

type FMSService struct {
	conns  ConnectionProvider
	sender PayloadSender
	logger zerolog.Logger
}

func NewFMSService(conns ConnectionProvider, sender PayloadSender, logger zerolog.Logger) *FMSService {
	return &FMSService{
		conns:  conns,
		sender: sender,
		logger: logger.With().Str("component", "fms_service").Logger(),
	}
}

// Forward sends one patient's billing data to the FMS. The returned error is
// nil only for OutcomeDelivered; otherwise it wraps one of the package's
// sentinel errors. Panics inside the flow become OutcomeUnexpectedError.
func (s *FMSService) Forward(ctx context.Context, patientID uint) (outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
			outcome = OutcomeUnexpectedError
			s.logger.Error().Uint("patient_id", patientID).Interface("panic", r).Msg("forward to fms panicked")
		}
	}()

	err = s.conns.WithConnection(ctx, func(tx *gorm.DB) error {
		payload, err := s.buildPayload(tx, patientID)
		if err != nil {
			return err
		}

		sendErr := s.deliver(ctx, payload)

		details := fmt.Sprintf("patient_id=%d outcome=%s", patientID, OutcomeOf(sendErr))
		if err := repository.NewAuditRepo(tx).CreateAuditLog(&patientID, repository.ActionFMSForward, details); err != nil {
			s.logger.Warn().Err(err).Uint("patient_id", patientID).Msg("failed to write audit log")
		}

		return sendErr
	})

	outcome = OutcomeOf(err)
	switch outcome {
	case OutcomeDelivered:
		s.logger.Info().Uint("patient_id", patientID).Msg("patient forwarded to fms")
	case OutcomeNotFound:
		s.logger.Info().Uint("patient_id", patientID).Msg("patient not found")
	case OutcomeDatabaseError:
		withMySQLError(s.logger.Error(), err).Uint("patient_id", patientID).Msg("database error while forwarding to fms")
	default:
		s.logger.Error().Err(err).Uint("patient_id", patientID).Str("outcome", outcome.String()).Msg("forward to fms failed")
	}

	return outcome, err
}

// buildPayload reads the patient and its line items with four independent
// queries on the same session.
func (s *FMSService) buildPayload(tx *gorm.DB, patientID uint) (*models.FMSPayload, error) {
	patient, err := repository.NewPatientRepo(tx).GetPatientByID(patientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, fmt.Errorf("patient %d: %w", patientID, ErrPatientNotFound)
		}
		return nil, fmt.Errorf("%w: fetch patient %d: %w", ErrQueryFailed, patientID, err)
	}

	items := repository.NewLineItemRepo(tx)

	services, err := items.GetServicesByPatientID(patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch services: %w", ErrQueryFailed, err)
	}
	medicines, err := items.GetMedicinesByPatientID(patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch medicines: %w", ErrQueryFailed, err)
	}
	rooms, err := items.GetRoomsByPatientID(patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch rooms: %w", ErrQueryFailed, err)
	}

	payload, err := models.NewFMSPayload(patient, services, medicines, rooms)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	return payload, nil
}

func (s *FMSService) deliver(ctx context.Context, payload *models.FMSPayload) error {
	status, err := s.sender.Send(ctx, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: fms responded with status %d", ErrDeliveryFailed, status)
	}
	return nil
}
