package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// ErrVolunteerNotFound is returned when a task names a volunteer that does
// not exist, or the caller has no volunteer profile.
var ErrVolunteerNotFound = fmt.Errorf("volunteer: %w", domain.ErrNotFound)

// VolunteerTaskUseCase work handed out to volunteers.
type VolunteerTaskUseCase struct {
	repo          repository.VolunteerTaskRepository
	volunteers    repository.VolunteerRepository
	notifications repository.NotificationRepository
	log           *logger.Logger
}

// NewVolunteerTaskUseCase builds the use case.
func NewVolunteerTaskUseCase(repo repository.VolunteerTaskRepository, volunteers repository.VolunteerRepository, notifications repository.NotificationRepository, log *logger.Logger) *VolunteerTaskUseCase {
	return &VolunteerTaskUseCase{repo: repo, volunteers: volunteers, notifications: notifications, log: log.Named("volunteer_tasks")}
}

// List pages tasks, newest first.
func (uc *VolunteerTaskUseCase) List(ctx context.Context, f dto.VolunteerTaskFilter, q dto.ListQuery) (*pagination.Result[*entity.VolunteerTask], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	filter := pagination.Filter{}.
		EqIf("volunteerId", f.VolunteerID).
		EqIf("status", f.Status).
		EqIf("priority", f.Priority)
	return pagination.Paginate[*entity.VolunteerTask](ctx, uc.repo, filter, opts)
}

// ListForUser pages the tasks of the volunteer profile owned by userID.
func (uc *VolunteerTaskUseCase) ListForUser(ctx context.Context, userID string, f dto.VolunteerTaskFilter, q dto.ListQuery) (*pagination.Result[*entity.VolunteerTask], error) {
	v, err := uc.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVolunteerNotFound
	}
	f.VolunteerID = v.ID
	return uc.List(ctx, f, q)
}

// Get returns one task.
func (uc *VolunteerTaskUseCase) Get(ctx context.Context, id string) (*entity.VolunteerTask, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// Create assigns a PENDING task to an existing volunteer and notifies them.
// A notification failure is logged, the task stays.
func (uc *VolunteerTaskUseCase) Create(ctx context.Context, createdBy string, in dto.CreateVolunteerTaskRequest) (*entity.VolunteerTask, error) {
	priority := lo.CoalesceOrEmpty(in.Priority, entity.TaskMedium)
	if !lo.Contains(entity.TaskPriorities, priority) {
		return nil, domain.ErrInvalidInput
	}
	due, err := optionalDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	v, err := uc.volunteers.GetByID(ctx, in.VolunteerID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVolunteerNotFound
	}

	now := time.Now().UTC()
	t := &entity.VolunteerTask{
		ID:            objectid.New(),
		VolunteerID:   v.ID,
		VolunteerName: v.Name,
		Title:         in.Title,
		Description:   in.Description,
		Priority:      priority,
		Status:        entity.TaskPending,
		DueDate:       due,
		AssignedDate:  now,
		Notes:         in.Notes,
		CreatedBy:     lo.EmptyableToPtr(createdBy),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	if err := notifyTaskAssignment(ctx, uc.notifications, t, v); err != nil {
		uc.log.Warn().Err(err).Str("task_id", t.ID).Msg("task assignment notification")
	}
	return t, nil
}

// Update applies the non-nil fields of in.
func (uc *VolunteerTaskUseCase) Update(ctx context.Context, id string, in dto.UpdateVolunteerTaskRequest) (*entity.VolunteerTask, error) {
	if !oneOf(in.Priority, entity.TaskPriorities) || !oneOf(in.Status, entity.TaskStatuses) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.DueDate != nil {
		due, err := optionalDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueDate = due
	}
	assign(&t.Title, in.Title)
	assign(&t.Description, in.Description)
	assign(&t.Priority, in.Priority)
	assign(&t.Notes, in.Notes)
	if in.Status != nil {
		setTaskStatus(t, *in.Status)
	}
	return uc.save(ctx, t)
}

// UpdateStatus moves a task along its lifecycle, replacing the notes when given.
func (uc *VolunteerTaskUseCase) UpdateStatus(ctx context.Context, id string, in dto.TaskStatusRequest) (*entity.VolunteerTask, error) {
	if !lo.Contains(entity.TaskStatuses, in.Status) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setTaskStatus(t, in.Status)
	assign(&t.Notes, in.Notes)
	return uc.save(ctx, t)
}

// Delete removes a task.
func (uc *VolunteerTaskUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *VolunteerTaskUseCase) save(ctx context.Context, t *entity.VolunteerTask) (*entity.VolunteerTask, error) {
	t.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// setTaskStatus stamps the completion date the first time a task completes.
func setTaskStatus(t *entity.VolunteerTask, status string) {
	t.Status = status
	if status == entity.TaskCompleted && t.CompletedDate == nil {
		now := time.Now().UTC()
		t.CompletedDate = &now
	}
}

// optionalDate parses an ISO-8601 date; an empty string clears it.
func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, ok := validation.ParseISODate(s)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	d = d.UTC()
	return &d, nil
}
