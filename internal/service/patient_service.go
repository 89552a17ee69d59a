package service

import (
	"context"
	"fmt"

	"patient-management-service/internal/models"
	"patient-management-service/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ConnectionProvider scopes a database session to a single call.
type ConnectionProvider interface {
	WithConnection(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type PatientService struct {
	conns  ConnectionProvider
	logger zerolog.Logger
}

func NewPatientService(conns ConnectionProvider, logger zerolog.Logger) *PatientService {
	return &PatientService{
		conns:  conns,
		logger: logger.With().Str("component", "patient_service").Logger(),
	}
}

// ListPatients returns every patient joined with its services, medicines and
// rooms, one row per combination.
func (s *PatientService) ListPatients(ctx context.Context) ([]models.PatientView, error) {
	var views []models.PatientView

	err := s.conns.WithConnection(ctx, func(tx *gorm.DB) error {
		var err error
		views, err = repository.NewPatientRepo(tx).GetAllPatientViews()
		if err != nil {
			return fmt.Errorf("%w: list patients: %w", ErrQueryFailed, err)
		}
		return nil
	})
	if err != nil {
		withMySQLError(s.logger.Error(), err).Msg("failed to list patients")
		return nil, err
	}

	return views, nil
}
