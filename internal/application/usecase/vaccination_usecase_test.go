package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
)

func TestVaccinationCreate_ParsesRecordDates(t *testing.T) {
	uc := usecase.NewVaccinationUseCase(newMemVaccinations())
	completed := false

	v, err := uc.Create(context.Background(), "vet-1", dto.CreateVaccinationRequest{
		DogName: "Bruno",
		Records: []dto.VaccinationRecordRequest{
			{VaccineName: "Rabies", Type: "RABIES", DateAdministered: "2024-03-01"},
			{VaccineName: "DHPP", Type: "DHPP", DateAdministered: "2024-03-01T10:30:00Z", NextDueDate: "2025-03-01", Completed: &completed},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, v.DogReportID)
	require.NotNil(t, v.VetID)
	assert.Equal(t, "vet-1", *v.VetID)
	require.Len(t, v.Records, 2)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), v.Records[0].DateAdministered)
	assert.True(t, v.Records[0].Completed)
	assert.Nil(t, v.Records[0].NextDueDate)
	assert.False(t, v.Records[1].Completed)
	require.NotNil(t, v.Records[1].NextDueDate)
	assert.Equal(t, 2025, v.Records[1].NextDueDate.Year())
}

func TestVaccinationCreate_BadDate(t *testing.T) {
	uc := usecase.NewVaccinationUseCase(newMemVaccinations())
	_, err := uc.Create(context.Background(), "", dto.CreateVaccinationRequest{
		Records: []dto.VaccinationRecordRequest{{VaccineName: "x", DateAdministered: "yesterday"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVaccinationAddRecordAndDelete(t *testing.T) {
	uc := usecase.NewVaccinationUseCase(newMemVaccinations())
	v, err := uc.Create(context.Background(), "", dto.CreateVaccinationRequest{DogName: "Bruno", DogReportID: "r1"})
	require.NoError(t, err)
	assert.Empty(t, v.Records)

	out, err := uc.AddRecord(context.Background(), v.ID, dto.VaccinationRecordRequest{VaccineName: "Rabies", DateAdministered: "2024-05-05"})
	require.NoError(t, err)
	assert.Len(t, out.Records, 1)

	_, err = uc.AddRecord(context.Background(), "missing", dto.VaccinationRecordRequest{VaccineName: "Rabies", DateAdministered: "2024-05-05"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(context.Background(), v.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), v.ID), domain.ErrNotFound)
}
