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
	"github.com/jhoicas/straydog-api/pkg/logger"
)

const reporterID = "65e1c0ffee00000000000001"

type reportFixture struct {
	reports       *memReports
	volunteers    *memVolunteers
	notifications *memNotifications
	tx            *memTx
	uc            *usecase.DogReportUseCase
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		reports:       newMemReports(),
		volunteers:    newMemVolunteers(),
		notifications: newMemNotifications(),
	}
	f.tx = &memTx{repos: usecase.TxRepos{DogReports: f.reports, Volunteers: f.volunteers, Notifications: f.notifications}}
	f.uc = usecase.NewDogReportUseCase(f.reports, f.notifications, f.tx, logger.Nop())
	return f
}

func (f *reportFixture) create(t *testing.T) *entity.DogReport {
	t.Helper()
	r, err := f.uc.Create(context.Background(), reporterID, dto.CreateDogReportRequest{
		DogName:         "Bruno",
		Description:     "Limping near the market",
		Condition:       entity.ConditionInjured,
		Location:        "MG Road",
		ReporterName:    "Asha",
		ReporterContact: "9999999999",
	})
	require.NoError(t, err)
	return r
}

func TestDogReportCreate_Defaults(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)

	assert.Len(t, r.ID, 24)
	assert.Equal(t, entity.ReportPending, r.Status)
	assert.Equal(t, entity.DefaultPriority, r.Priority)
	require.NotNil(t, r.ReportedBy)
	assert.Equal(t, reporterID, *r.ReportedBy)
	assert.NotNil(t, r.Notes)
	assert.NotNil(t, r.Tags)
}

func TestDogReportCreate_PriorityOutOfRange(t *testing.T) {
	f := newReportFixture()
	p := 9
	_, err := f.uc.Create(context.Background(), reporterID, dto.CreateDogReportRequest{Priority: &p})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDogReportList_FiltersByStatus(t *testing.T) {
	f := newReportFixture()
	f.create(t)
	r := f.create(t)
	status := entity.ReportRescued
	_, err := f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Status: &status})
	require.NoError(t, err)

	res, err := f.uc.List(context.Background(), dto.DogReportFilter{Status: entity.ReportPending}, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Pagination.Total)
	assert.Len(t, res.Results, 1)
}

func TestDogReportUpdate_StatusChangeNotifiesReporter(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)

	status := entity.ReportRescued
	updated, err := f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportRescued, updated.Status)
	assert.NotNil(t, updated.RescueDate)
	assert.Equal(t, "Bruno", updated.DogName, "nil fields are kept")

	require.Len(t, f.notifications.items, 1)
	n := f.notifications.items[0]
	assert.Equal(t, reporterID, n.UserID)
	assert.Equal(t, entity.NotificationCaseUpdate, n.Type)
}

func TestDogReportUpdate_SameStatusDoesNotNotify(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)
	loc := "Church Street"

	_, err := f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Location: &loc})
	require.NoError(t, err)
	assert.Empty(t, f.notifications.items)
}

func TestDogReportUpdate_NotificationFailureIsNotFatal(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)
	f.notifications.failCreate = true
	status := entity.ReportClosed

	_, err := f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Status: &status})
	assert.NoError(t, err)
}

func TestDogReportUpdate_RejectsValuesOutsideTheSets(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)
	healthy, whatever := "healthy", "whatever"

	_, err := f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Condition: &healthy})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Update(context.Background(), r.ID, dto.UpdateDogReportRequest{Status: &whatever})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := f.uc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConditionInjured, stored.Condition)
	assert.Equal(t, entity.ReportPending, stored.Status)
	assert.Empty(t, f.notifications.items)
}

func TestDogReportAssign(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)
	v := &entity.Volunteer{ID: "65e1c0ffee00000000000002", UserID: "65e1c0ffee00000000000003", Name: "Ravi"}
	f.volunteers.add(v)

	out, err := f.uc.Assign(context.Background(), r.ID, dto.AssignVolunteerRequest{VolunteerID: v.ID, VolunteerName: "Ravi"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.runs)
	assert.Equal(t, entity.ReportAssigned, out.Status)
	require.NotNil(t, out.AssignedTo)
	assert.Equal(t, v.ID, *out.AssignedTo)
	assert.Equal(t, []string{r.ID}, v.AssignedCases)

	require.Len(t, f.notifications.items, 1)
	n := f.notifications.items[0]
	assert.Equal(t, v.UserID, n.UserID)
	assert.Equal(t, entity.NotificationCaseAssigned, n.Type)
	assert.Equal(t, "You have been assigned to case: Bruno", n.Message)
}

func TestDogReportAssign_NotFound(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)

	_, err := f.uc.Assign(context.Background(), r.ID, dto.AssignVolunteerRequest{VolunteerID: "65e1c0ffee000000000000ff"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Assign(context.Background(), "65e1c0ffee000000000000ff", dto.AssignVolunteerRequest{VolunteerID: r.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDogReportAddNote(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)

	out, err := f.uc.AddNote(context.Background(), r.ID, "Asha", "Fed and watered")
	require.NoError(t, err)
	require.Len(t, out.Notes, 1)
	assert.Equal(t, "Asha", out.Notes[0].AddedBy)
	assert.False(t, out.Notes[0].AddedAt.IsZero())

	_, err = f.uc.AddNote(context.Background(), "65e1c0ffee000000000000ff", "Asha", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDogReportDelete(t *testing.T) {
	f := newReportFixture()
	r := f.create(t)

	require.NoError(t, f.uc.Delete(context.Background(), r.ID))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), r.ID), domain.ErrNotFound)
	_, err := f.uc.Get(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
