package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// AdoptionDogRepository is the persistence port for AdoptionDog.
type AdoptionDogRepository interface {
	pagination.Collection[*entity.AdoptionDog]

	Create(ctx context.Context, d *entity.AdoptionDog) error
	GetByID(ctx context.Context, id string) (*entity.AdoptionDog, error)
	Update(ctx context.Context, d *entity.AdoptionDog) error
	Delete(ctx context.Context, id string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
