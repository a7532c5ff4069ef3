package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.AdoptionDogRepository = (*AdoptionDogRepo)(nil)

var adoptionDogFields = map[string]string{
	"id":           "id",
	"name":         "name",
	"breed":        "breed",
	"age":          "age",
	"gender":       "gender",
	"size":         "size",
	"description":  "description",
	"photos":       "photos",
	"healthStatus": "health_status",
	"vaccinated":   "vaccinated",
	"neutered":     "neutered",
	"temperament":  "temperament",
	"goodWithKids": "good_with_kids",
	"goodWithPets": "good_with_pets",
	"specialNeeds": "special_needs",
	"status":       "status",
	"addedBy":      "added_by",
	"addedDate":    "added_date",
	"updatedDate":  "updated_date",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

// AdoptionDogRepo implements repository.AdoptionDogRepository on PostgreSQL.
type AdoptionDogRepo struct {
	*Table[entity.AdoptionDog]
}

// NewAdoptionDogRepository builds the adoption_dogs adapter.
func NewAdoptionDogRepository(q Querier) *AdoptionDogRepo {
	return &AdoptionDogRepo{Table: NewTable[entity.AdoptionDog](q, "adoption_dogs", adoptionDogFields)}
}

// Create inserts a dog.
func (r *AdoptionDogRepo) Create(ctx context.Context, d *entity.AdoptionDog) error {
	if d.Photos == nil {
		d.Photos = []string{}
	}
	query := `
		INSERT INTO adoption_dogs (id, name, breed, age, gender, size, description, photos, health_status,
			vaccinated, neutered, temperament, good_with_kids, good_with_pets, special_needs, status,
			added_by, added_date, updated_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Breed, d.Age, d.Gender, d.Size, d.Description, d.Photos, d.HealthStatus,
		d.Vaccinated, d.Neutered, d.Temperament, d.GoodWithKids, d.GoodWithPets, d.SpecialNeeds, d.Status,
		d.AddedBy, d.AddedDate, d.UpdatedDate, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adoption dog: %w", err)
	}
	return nil
}

// GetByID returns the dog or nil.
func (r *AdoptionDogRepo) GetByID(ctx context.Context, id string) (*entity.AdoptionDog, error) {
	return r.Get(ctx, id)
}

// Update writes every mutable column of d.
func (r *AdoptionDogRepo) Update(ctx context.Context, d *entity.AdoptionDog) error {
	if d.Photos == nil {
		d.Photos = []string{}
	}
	query := `
		UPDATE adoption_dogs SET name = $2, breed = $3, age = $4, gender = $5, size = $6, description = $7,
			photos = $8, health_status = $9, vaccinated = $10, neutered = $11, temperament = $12,
			good_with_kids = $13, good_with_pets = $14, special_needs = $15, status = $16,
			updated_date = $17, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Breed, d.Age, d.Gender, d.Size, d.Description,
		d.Photos, d.HealthStatus, d.Vaccinated, d.Neutered, d.Temperament,
		d.GoodWithKids, d.GoodWithPets, d.SpecialNeeds, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update adoption dog: %w", err)
	}
	return nil
}

// ExistsByName is used by the seed command to stay idempotent.
func (r *AdoptionDogRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM adoption_dogs WHERE name = $1)`, name).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("adoption dog exists: %w", err)
	}
	return ok, nil
}
