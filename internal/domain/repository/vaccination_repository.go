package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// VaccinationRepository is the persistence port for Vaccination.
type VaccinationRepository interface {
	pagination.Collection[*entity.Vaccination]

	Create(ctx context.Context, v *entity.Vaccination) error
	GetByID(ctx context.Context, id string) (*entity.Vaccination, error)
	AppendRecord(ctx context.Context, id string, rec entity.VaccinationRecord) (*entity.Vaccination, error)
	Delete(ctx context.Context, id string) (bool, error)
}
