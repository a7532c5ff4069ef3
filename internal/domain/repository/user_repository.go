package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
// Reads return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
