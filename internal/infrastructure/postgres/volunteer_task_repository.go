package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.VolunteerTaskRepository = (*VolunteerTaskRepo)(nil)

var volunteerTaskFields = map[string]string{
	"id":            "id",
	"volunteerId":   "volunteer_id",
	"volunteerName": "volunteer_name",
	"title":         "title",
	"description":   "description",
	"priority":      "priority",
	"status":        "status",
	"dueDate":       "due_date",
	"assignedDate":  "assigned_date",
	"completedDate": "completed_date",
	"notes":         "notes",
	"createdBy":     "created_by",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// VolunteerTaskRepo implements repository.VolunteerTaskRepository on PostgreSQL.
type VolunteerTaskRepo struct {
	*Table[entity.VolunteerTask]
}

// NewVolunteerTaskRepository builds the volunteer_tasks adapter.
func NewVolunteerTaskRepository(q Querier) *VolunteerTaskRepo {
	return &VolunteerTaskRepo{Table: NewTable[entity.VolunteerTask](q, "volunteer_tasks", volunteerTaskFields)}
}

// Create inserts a task.
func (r *VolunteerTaskRepo) Create(ctx context.Context, t *entity.VolunteerTask) error {
	query := `
		INSERT INTO volunteer_tasks (id, volunteer_id, volunteer_name, title, description, priority, status,
			due_date, assigned_date, completed_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.VolunteerID, t.VolunteerName, t.Title, t.Description, t.Priority, t.Status,
		t.DueDate, t.AssignedDate, t.CompletedDate, t.Notes, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert volunteer task: %w", err)
	}
	return nil
}

// GetByID returns the task or nil.
func (r *VolunteerTaskRepo) GetByID(ctx context.Context, id string) (*entity.VolunteerTask, error) {
	return r.Get(ctx, id)
}

// Update writes every mutable column of t.
func (r *VolunteerTaskRepo) Update(ctx context.Context, t *entity.VolunteerTask) error {
	query := `
		UPDATE volunteer_tasks SET title = $2, description = $3, priority = $4, status = $5, due_date = $6,
			completed_date = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.Priority, t.Status, t.DueDate,
		t.CompletedDate, t.Notes, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update volunteer task: %w", err)
	}
	return nil
}
