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
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/logger"
)

type memTasks struct{ memColl[*entity.VolunteerTask] }

var _ repository.VolunteerTaskRepository = (*memTasks)(nil)

func newMemTasks() *memTasks {
	return &memTasks{memColl[*entity.VolunteerTask]{
		id: func(t *entity.VolunteerTask) string { return t.ID },
		fields: map[string]func(*entity.VolunteerTask) any{
			"volunteerId": func(t *entity.VolunteerTask) any { return t.VolunteerID },
			"status":      func(t *entity.VolunteerTask) any { return t.Status },
			"priority":    func(t *entity.VolunteerTask) any { return t.Priority },
		},
	}}
}

func (m *memTasks) Create(_ context.Context, t *entity.VolunteerTask) error {
	m.add(t)
	return nil
}

func (m *memTasks) GetByID(_ context.Context, id string) (*entity.VolunteerTask, error) {
	t, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTasks) Update(_ context.Context, t *entity.VolunteerTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == t.ID {
			cp := *t
			m.items[i] = &cp
		}
	}
	return nil
}

func (m *memTasks) Delete(_ context.Context, id string) (bool, error) {
	return m.remove(id), nil
}

const (
	volunteerUserID = "65e1c0ffee00000000000002"
	adminUserID     = "65e1c0ffee00000000000003"
)

type taskFixture struct {
	tasks         *memTasks
	notifications *memNotifications
	volunteer     *entity.Volunteer
	uc            *usecase.VolunteerTaskUseCase
}

func newTaskFixture() *taskFixture {
	volunteers := newMemVolunteers()
	v := &entity.Volunteer{ID: "65e1c0ffee0000000000000a", UserID: volunteerUserID, Name: "Ravi", Status: entity.VolunteerActive}
	volunteers.add(v)
	f := &taskFixture{tasks: newMemTasks(), notifications: newMemNotifications(), volunteer: v}
	f.uc = usecase.NewVolunteerTaskUseCase(f.tasks, volunteers, f.notifications, logger.Nop())
	return f
}

func (f *taskFixture) create(t *testing.T) *entity.VolunteerTask {
	t.Helper()
	task, err := f.uc.Create(context.Background(), adminUserID, dto.CreateVolunteerTaskRequest{
		VolunteerID: f.volunteer.ID,
		Title:       "Feed the market pack",
		DueDate:     "2025-03-01",
	})
	require.NoError(t, err)
	return task
}

func TestVolunteerTaskCreate_Defaults(t *testing.T) {
	f := newTaskFixture()
	task := f.create(t)

	assert.Len(t, task.ID, 24)
	assert.Equal(t, entity.TaskPending, task.Status)
	assert.Equal(t, entity.TaskMedium, task.Priority)
	assert.Equal(t, "Ravi", task.VolunteerName)
	assert.False(t, task.AssignedDate.IsZero())
	assert.Nil(t, task.CompletedDate)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-03-01", task.DueDate.Format("2006-01-02"))
	require.NotNil(t, task.CreatedBy)
	assert.Equal(t, adminUserID, *task.CreatedBy)

	require.Len(t, f.notifications.items, 1)
	n := f.notifications.items[0]
	assert.Equal(t, volunteerUserID, n.UserID)
	assert.Equal(t, entity.NotificationTaskAssigned, n.Type)
	assert.Equal(t, task.ID, n.RelatedEntityID)
}

func TestVolunteerTaskCreate_Rejects(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "", dto.CreateVolunteerTaskRequest{VolunteerID: "507f1f77bcf86cd799439011", Title: "x"})
	assert.ErrorIs(t, err, usecase.ErrVolunteerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(ctx, "", dto.CreateVolunteerTaskRequest{VolunteerID: f.volunteer.ID, Title: "x", Priority: "high"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, "", dto.CreateVolunteerTaskRequest{VolunteerID: f.volunteer.ID, Title: "x", DueDate: "tomorrow"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, f.tasks.items)
}

func TestVolunteerTaskCreate_NotificationFailureIsNotFatal(t *testing.T) {
	f := newTaskFixture()
	f.notifications.failCreate = true
	f.create(t)
	assert.Len(t, f.tasks.items, 1)
}

func TestVolunteerTaskUpdateStatus_StampsCompletionOnce(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()
	task := f.create(t)

	out, err := f.uc.UpdateStatus(ctx, task.ID, dto.TaskStatusRequest{Status: entity.TaskInProgress})
	require.NoError(t, err)
	assert.Nil(t, out.CompletedDate)

	notes := "All six fed"
	out, err = f.uc.UpdateStatus(ctx, task.ID, dto.TaskStatusRequest{Status: entity.TaskCompleted, Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, out.CompletedDate)
	assert.Equal(t, "All six fed", out.Notes)
	first := *out.CompletedDate

	out, err = f.uc.UpdateStatus(ctx, task.ID, dto.TaskStatusRequest{Status: entity.TaskCompleted})
	require.NoError(t, err)
	assert.Equal(t, first, *out.CompletedDate)
	assert.Equal(t, "All six fed", out.Notes, "notes are kept when absent")

	_, err = f.uc.UpdateStatus(ctx, task.ID, dto.TaskStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.UpdateStatus(ctx, "507f1f77bcf86cd799439011", dto.TaskStatusRequest{Status: entity.TaskCancelled})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVolunteerTaskUpdate(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()
	task := f.create(t)

	title, urgent, done, noDate := "Feed both packs", entity.TaskUrgent, entity.TaskCompleted, ""
	out, err := f.uc.Update(ctx, task.ID, dto.UpdateVolunteerTaskRequest{Title: &title, Priority: &urgent, Status: &done, DueDate: &noDate})
	require.NoError(t, err)
	assert.Equal(t, "Feed both packs", out.Title)
	assert.Equal(t, entity.TaskUrgent, out.Priority)
	assert.NotNil(t, out.CompletedDate)
	assert.Nil(t, out.DueDate)

	bad := "SOMEDAY"
	_, err = f.uc.Update(ctx, task.ID, dto.UpdateVolunteerTaskRequest{Priority: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Update(ctx, task.ID, dto.UpdateVolunteerTaskRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := f.uc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskUrgent, stored.Priority)
}

func TestVolunteerTaskListForUser(t *testing.T) {
	f := newTaskFixture()
	ctx := context.Background()
	f.create(t)
	f.create(t)
	f.tasks.add(&entity.VolunteerTask{ID: "65e1c0ffee0000000000000f", VolunteerID: "someone-else", Status: entity.TaskPending})

	res, err := f.uc.ListForUser(ctx, volunteerUserID, dto.VolunteerTaskFilter{}, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Pagination.Total)

	res, err = f.uc.List(ctx, dto.VolunteerTaskFilter{Status: entity.TaskPending}, dto.ListQuery{Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Pagination.Total)
	assert.Len(t, res.Results, 1)

	_, err = f.uc.ListForUser(ctx, adminUserID, dto.VolunteerTaskFilter{}, dto.ListQuery{})
	assert.ErrorIs(t, err, usecase.ErrVolunteerNotFound)
}

func TestVolunteerTaskDelete(t *testing.T) {
	f := newTaskFixture()
	task := f.create(t)

	require.NoError(t, f.uc.Delete(context.Background(), task.ID))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), task.ID), domain.ErrNotFound)
}
