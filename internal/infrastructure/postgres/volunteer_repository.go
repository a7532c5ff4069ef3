package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.VolunteerRepository = (*VolunteerRepo)(nil)

var volunteerFields = map[string]string{
	"id":             "id",
	"userId":         "user_id",
	"name":           "name",
	"contact":        "contact",
	"email":          "email",
	"area":           "area",
	"role":           "role",
	"status":         "status",
	"assignedCases":  "assigned_cases",
	"completedCases": "completed_cases",
	"availability":   "availability",
	"address":        "address",
	"experience":     "experience",
	"certifications": "certifications",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// VolunteerRepo implements repository.VolunteerRepository on PostgreSQL.
type VolunteerRepo struct {
	*Table[entity.Volunteer]
}

// NewVolunteerRepository builds the volunteers adapter.
func NewVolunteerRepository(q Querier) *VolunteerRepo {
	return &VolunteerRepo{Table: NewTable[entity.Volunteer](q, "volunteers", volunteerFields)}
}

// Create inserts a volunteer. A second registration of the same user yields
// domain.ErrAlreadyRegistered.
func (r *VolunteerRepo) Create(ctx context.Context, v *entity.Volunteer) error {
	if v.AssignedCases == nil {
		v.AssignedCases = []string{}
	}
	query := `
		INSERT INTO volunteers (id, user_id, name, contact, email, area, role, status, assigned_cases,
			completed_cases, availability, address, experience, certifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.UserID, v.Name, v.Contact, v.Email, v.Area, v.Role, v.Status, v.AssignedCases,
		v.CompletedCases, v.Availability, v.Address, v.Experience, v.Certifications, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert volunteer: %w", err)
	}
	return nil
}

// GetByID returns the volunteer or nil.
func (r *VolunteerRepo) GetByID(ctx context.Context, id string) (*entity.Volunteer, error) {
	return r.Get(ctx, id)
}

// GetByUserID returns the volunteer profile of a user or nil.
func (r *VolunteerRepo) GetByUserID(ctx context.Context, userID string) (*entity.Volunteer, error) {
	v, err := r.One(ctx, `SELECT * FROM volunteers WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get volunteer by user: %w", err)
	}
	return v, nil
}

// UpdateStatus sets the status and returns the volunteer, or nil.
func (r *VolunteerRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Volunteer, error) {
	v, err := r.One(ctx,
		`UPDATE volunteers SET status = $2, updated_at = now() WHERE id = $1 RETURNING *`, id, status)
	if err != nil {
		return nil, fmt.Errorf("update volunteer status: %w", err)
	}
	return v, nil
}

// AddAssignedCase records a report id on the volunteer, once.
func (r *VolunteerRepo) AddAssignedCase(ctx context.Context, id, reportID string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE volunteers SET assigned_cases = array_append(assigned_cases, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(assigned_cases))`, id, reportID)
	if err != nil {
		return fmt.Errorf("add assigned case: %w", err)
	}
	return nil
}
