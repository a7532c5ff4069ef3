package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

func newVolunteerUC() (*usecase.VolunteerUseCase, *memVolunteers, *memNotifications) {
	vols, notes := newMemVolunteers(), newMemNotifications()
	tx := &memTx{repos: usecase.TxRepos{Volunteers: vols, Notifications: notes}}
	return usecase.NewVolunteerUseCase(vols, tx), vols, notes
}

func TestVolunteerRegister(t *testing.T) {
	uc, _, _ := newVolunteerUC()
	v, err := uc.Register(context.Background(), "u1", dto.RegisterVolunteerRequest{
		Name: "Ravi", Contact: "9876543210", Email: " Ravi@Example.com ", Area: "North", Role: "RESCUER",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VolunteerPending, v.Status)
	assert.Equal(t, "ravi@example.com", v.Email)
	assert.Equal(t, "u1", v.UserID)
	assert.NotNil(t, v.AssignedCases)

	got, err := uc.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	_, err = uc.GetByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVolunteerUpdateStatus_ApprovalNotifies(t *testing.T) {
	uc, _, notes := newVolunteerUC()
	v, err := uc.Register(context.Background(), "u1", dto.RegisterVolunteerRequest{Name: "Ravi", Role: "FEEDER"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), v.ID, entity.VolunteerApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.VolunteerApproved, out.Status)

	require.Len(t, notes.items, 1)
	assert.Equal(t, "u1", notes.items[0].UserID)
	assert.Equal(t, entity.NotificationVolunteerApproved, notes.items[0].Type)
}

func TestVolunteerUpdateStatus_RejectionIsSilent(t *testing.T) {
	uc, _, notes := newVolunteerUC()
	v, err := uc.Register(context.Background(), "u1", dto.RegisterVolunteerRequest{Name: "Ravi", Role: "FEEDER"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), v.ID, entity.VolunteerRejected)
	require.NoError(t, err)
	assert.Empty(t, notes.items)
}

func TestVolunteerUpdateStatus_NotificationFailureAborts(t *testing.T) {
	uc, _, notes := newVolunteerUC()
	v, err := uc.Register(context.Background(), "u1", dto.RegisterVolunteerRequest{Name: "Ravi", Role: "FEEDER"})
	require.NoError(t, err)
	notes.failCreate = true

	_, err = uc.UpdateStatus(context.Background(), v.ID, entity.VolunteerApproved)
	assert.Error(t, err)
}

func TestVolunteerUpdateStatus_NotFound(t *testing.T) {
	uc, _, _ := newVolunteerUC()
	_, err := uc.UpdateStatus(context.Background(), "missing", entity.VolunteerActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVolunteerList_FiltersByRole(t *testing.T) {
	uc, _, _ := newVolunteerUC()
	for _, role := range []string{"FEEDER", "VET", "FEEDER"} {
		_, err := uc.Register(context.Background(), role, dto.RegisterVolunteerRequest{Name: "x", Role: role})
		require.NoError(t, err)
	}
	res, err := uc.List(context.Background(), dto.VolunteerFilter{Role: "FEEDER"}, dto.ListQuery{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Pagination.Total)
	assert.Len(t, res.Results, 1)
	assert.True(t, res.Pagination.HasNext)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Volunteer approved", usecase.StatusMessage("Volunteer", entity.VolunteerApproved))
}
