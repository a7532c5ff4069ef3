package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// ForumUseCase community posts and comments.
type ForumUseCase struct {
	repo repository.ForumPostRepository
}

// NewForumUseCase builds the use case.
func NewForumUseCase(repo repository.ForumPostRepository) *ForumUseCase {
	return &ForumUseCase{repo: repo}
}

// List pages posts, pinned ones first and then newest first.
func (uc *ForumUseCase) List(ctx context.Context, f dto.ForumPostFilter, q dto.ListQuery) (*pagination.Result[*entity.ForumPost], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit, pagination.SortBy(
		pagination.SortField{Field: "pinned", Direction: pagination.Desc},
		pagination.SortField{Field: "createdAt", Direction: pagination.Desc},
	))
	if err != nil {
		return nil, err
	}
	return pagination.Paginate[*entity.ForumPost](ctx, uc.repo, pagination.Filter{}.EqIf("category", f.Category), opts)
}

// Get returns one post.
func (uc *ForumUseCase) Get(ctx context.Context, id string) (*entity.ForumPost, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Create publishes a post written by author.
func (uc *ForumUseCase) Create(ctx context.Context, author *entity.User, in dto.CreateForumPostRequest) (*entity.ForumPost, error) {
	now := time.Now().UTC()
	p := &entity.ForumPost{
		ID:         objectid.New(),
		Title:      in.Title,
		Content:    in.Content,
		Category:   in.Category,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Comments:   []entity.Comment{},
		Tags:       lo.Compact(in.Tags),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Comment appends a comment by author. Locked posts return domain.ErrLocked.
func (uc *ForumUseCase) Comment(ctx context.Context, id string, author *entity.User, content string) (*entity.ForumPost, error) {
	p, err := uc.repo.AppendComment(ctx, id, entity.Comment{
		ID:         objectid.New(),
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	// Nothing was updated: either the post is missing or it is locked.
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrLocked
}
