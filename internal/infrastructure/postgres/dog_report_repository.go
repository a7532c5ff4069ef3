package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.DogReportRepository = (*DogReportRepo)(nil)

var dogReportFields = map[string]string{
	"id":                    "id",
	"dogName":               "dog_name",
	"description":           "description",
	"condition":             "condition",
	"location":              "location",
	"coordinates":           "coordinates",
	"photoUrl":              "photo_url",
	"status":                "status",
	"reportedBy":            "reported_by",
	"reporterName":          "reporter_name",
	"reporterContact":       "reporter_contact",
	"assignedTo":            "assigned_to",
	"assignedVolunteerName": "assigned_volunteer_name",
	"notes":                 "notes",
	"tags":                  "tags",
	"priority":              "priority",
	"rescueDate":            "rescue_date",
	"createdAt":             "created_at",
	"updatedAt":             "updated_at",
}

// DogReportRepo implements repository.DogReportRepository on PostgreSQL.
type DogReportRepo struct {
	*Table[entity.DogReport]
}

// NewDogReportRepository builds the dog_reports adapter. The "assignedTo"
// relation expands to the assigned volunteer.
func NewDogReportRepository(q Querier) *DogReportRepo {
	t := NewTable[entity.DogReport](q, "dog_reports", dogReportFields).
		WithLoader("assignedTo", loadAssignedVolunteers)
	return &DogReportRepo{Table: t}
}

// Create inserts a report.
func (r *DogReportRepo) Create(ctx context.Context, d *entity.DogReport) error {
	normalizeDogReport(d)
	query := `
		INSERT INTO dog_reports (id, dog_name, description, condition, location, coordinates, photo_url, status,
			reported_by, reporter_name, reporter_contact, assigned_to, assigned_volunteer_name, notes, tags,
			priority, rescue_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.DogName, d.Description, d.Condition, d.Location, d.Coordinates, d.PhotoURL, d.Status,
		d.ReportedBy, d.ReporterName, d.ReporterContact, d.AssignedTo, d.AssignedVolunteerName, d.Notes, d.Tags,
		d.Priority, d.RescueDate, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dog report: %w", err)
	}
	return nil
}

// GetByID returns the report or nil.
func (r *DogReportRepo) GetByID(ctx context.Context, id string) (*entity.DogReport, error) {
	return r.Get(ctx, id)
}

// Update writes every mutable column of d.
func (r *DogReportRepo) Update(ctx context.Context, d *entity.DogReport) error {
	normalizeDogReport(d)
	query := `
		UPDATE dog_reports SET dog_name = $2, description = $3, condition = $4, location = $5, coordinates = $6,
			photo_url = $7, status = $8, reporter_name = $9, reporter_contact = $10, assigned_to = $11,
			assigned_volunteer_name = $12, tags = $13, priority = $14, rescue_date = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.DogName, d.Description, d.Condition, d.Location, d.Coordinates,
		d.PhotoURL, d.Status, d.ReporterName, d.ReporterContact, d.AssignedTo,
		d.AssignedVolunteerName, d.Tags, d.Priority, d.RescueDate, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update dog report: %w", err)
	}
	return nil
}

// AppendNote adds a note atomically and returns the updated report, or nil.
func (r *DogReportRepo) AppendNote(ctx context.Context, id string, n entity.Note) (*entity.DogReport, error) {
	d, err := r.One(ctx, `
		UPDATE dog_reports SET notes = notes || jsonb_build_array($2::jsonb), updated_at = now()
		WHERE id = $1 RETURNING *`, id, n)
	if err != nil {
		return nil, fmt.Errorf("append note: %w", err)
	}
	return d, nil
}

// CountByDay groups reports created since the given instant by UTC day.
func (r *DogReportRepo) CountByDay(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, count(*) AS count
		FROM dog_reports WHERE created_at >= $1
		GROUP BY 1 ORDER BY 1`, since)
	if err != nil {
		return nil, fmt.Errorf("count reports by day: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[repository.DailyCount])
	if err != nil {
		return nil, fmt.Errorf("scan daily counts: %w", err)
	}
	return out, nil
}

func normalizeDogReport(d *entity.DogReport) {
	if d.Notes == nil {
		d.Notes = []entity.Note{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
}

func loadAssignedVolunteers(ctx context.Context, q Querier, items []*entity.DogReport) error {
	ids := lo.Uniq(lo.FilterMap(items, func(d *entity.DogReport, _ int) (string, bool) {
		if d.AssignedTo == nil {
			return "", false
		}
		return *d.AssignedTo, true
	}))
	if len(ids) == 0 {
		return nil
	}
	rows, err := q.Query(ctx, `SELECT id, name, contact, email, role FROM volunteers WHERE id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	refs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.VolunteerRef])
	if err != nil {
		return err
	}
	byID := lo.KeyBy(refs, func(v *entity.VolunteerRef) string { return v.ID })
	for _, d := range items {
		if d.AssignedTo != nil {
			d.Volunteer = byID[*d.AssignedTo]
		}
	}
	return nil
}
