package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// VolunteerRepository is the persistence port for Volunteer.
type VolunteerRepository interface {
	pagination.Collection[*entity.Volunteer]

	Create(ctx context.Context, v *entity.Volunteer) error
	GetByID(ctx context.Context, id string) (*entity.Volunteer, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Volunteer, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Volunteer, error)
	AddAssignedCase(ctx context.Context, id, reportID string) error
}
