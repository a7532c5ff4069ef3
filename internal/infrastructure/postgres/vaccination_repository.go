package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.VaccinationRepository = (*VaccinationRepo)(nil)

var vaccinationFields = map[string]string{
	"id":             "id",
	"dogReportId":    "dog_report_id",
	"dogName":        "dog_name",
	"dogDescription": "dog_description",
	"records":        "records",
	"vetId":          "vet_id",
	"vetName":        "vet_name",
	"location":       "location",
	"notes":          "notes",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// VaccinationRepo implements repository.VaccinationRepository on PostgreSQL.
type VaccinationRepo struct {
	*Table[entity.Vaccination]
}

// NewVaccinationRepository builds the vaccinations adapter.
func NewVaccinationRepository(q Querier) *VaccinationRepo {
	return &VaccinationRepo{Table: NewTable[entity.Vaccination](q, "vaccinations", vaccinationFields)}
}

// Create inserts a vaccination card.
func (r *VaccinationRepo) Create(ctx context.Context, v *entity.Vaccination) error {
	if v.Records == nil {
		v.Records = []entity.VaccinationRecord{}
	}
	query := `
		INSERT INTO vaccinations (id, dog_report_id, dog_name, dog_description, records, vet_id, vet_name,
			location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.DogReportID, v.DogName, v.DogDescription, v.Records, v.VetID, v.VetName,
		v.Location, v.Notes, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vaccination: %w", err)
	}
	return nil
}

// GetByID returns the card or nil.
func (r *VaccinationRepo) GetByID(ctx context.Context, id string) (*entity.Vaccination, error) {
	return r.Get(ctx, id)
}

// AppendRecord adds one record atomically and returns the card, or nil.
func (r *VaccinationRepo) AppendRecord(ctx context.Context, id string, rec entity.VaccinationRecord) (*entity.Vaccination, error) {
	v, err := r.One(ctx, `
		UPDATE vaccinations SET records = records || jsonb_build_array($2::jsonb), updated_at = now()
		WHERE id = $1 RETURNING *`, id, rec)
	if err != nil {
		return nil, fmt.Errorf("append vaccination record: %w", err)
	}
	return v, nil
}
