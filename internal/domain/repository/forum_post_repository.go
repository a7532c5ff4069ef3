package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// ForumPostRepository is the persistence port for ForumPost.
type ForumPostRepository interface {
	pagination.Collection[*entity.ForumPost]

	Create(ctx context.Context, p *entity.ForumPost) error
	GetByID(ctx context.Context, id string) (*entity.ForumPost, error)
	AppendComment(ctx context.Context, id string, c entity.Comment) (*entity.ForumPost, error)
}
