package service

import (
	"context"
	"errors"
	"testing"

	"patient-management-service/internal/database"
	"patient-management-service/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPatients(t *testing.T) {
	db, _, mock := testutil.NewMockDB(t)
	provider := database.NewProvider(db)
	svc := NewPatientService(provider, zerolog.Nop())

	mock.ExpectQuery(testutil.ListingQuery).WillReturnRows(sqlmock.NewRows(testutil.ListingColumns).
		AddRow(1, "John Doe", "555-0101", "ACME-1", "1 Main St", "inpatient",
			"X-Ray", []byte("1.00"), []byte("120.50"), "Ibuprofen", int64(2), 4.25, nil, nil, nil, nil).
		AddRow(2, "Mary Major", "555-0102", nil, "2 Side St", "outpatient",
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	views, err := svc.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "John Doe", views[0].FullName)
	assert.Equal(t, "1.00", views[0].ServiceQuantity.Decimal.Text('f'))
	assert.Equal(t, "4.25", views[0].MedicineCost.Decimal.Text('f'))
	assert.Nil(t, views[1].ServiceName)
	assert.Equal(t, database.Stats{Acquired: 1, Released: 1}, provider.Stats())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatients_QueryFailureReleasesConnection(t *testing.T) {
	db, _, mock := testutil.NewMockDB(t)
	provider := database.NewProvider(db)
	svc := NewPatientService(provider, zerolog.Nop())

	mock.ExpectQuery(testutil.ListingQuery).WillReturnError(errors.New("syntax error"))

	views, err := svc.ListPatients(context.Background())

	assert.Nil(t, views)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.NotErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, database.Stats{Acquired: 1, Released: 1}, provider.Stats())
}

func TestListPatients_ConnectionFailure(t *testing.T) {
	db, sqlDB, _ := testutil.NewMockDB(t)
	provider := database.NewProvider(db)
	svc := NewPatientService(provider, zerolog.Nop())
	_ = sqlDB.Close()

	views, err := svc.ListPatients(context.Background())

	assert.Nil(t, views)
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.NotErrorIs(t, err, ErrQueryFailed)
	assert.Equal(t, database.Stats{}, provider.Stats())
}
