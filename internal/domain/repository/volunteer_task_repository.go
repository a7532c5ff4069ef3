package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// VolunteerTaskRepository is the persistence port for VolunteerTask.
type VolunteerTaskRepository interface {
	pagination.Collection[*entity.VolunteerTask]

	Create(ctx context.Context, t *entity.VolunteerTask) error
	GetByID(ctx context.Context, id string) (*entity.VolunteerTask, error)
	Update(ctx context.Context, t *entity.VolunteerTask) error
	Delete(ctx context.Context, id string) (bool, error)
}
