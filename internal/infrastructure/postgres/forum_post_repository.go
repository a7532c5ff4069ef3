package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.ForumPostRepository = (*ForumPostRepo)(nil)

var forumPostFields = map[string]string{
	"id":         "id",
	"title":      "title",
	"content":    "content",
	"category":   "category",
	"authorId":   "author_id",
	"authorName": "author_name",
	"tags":       "tags",
	"likes":      "likes",
	"views":      "views",
	"pinned":     "pinned",
	"locked":     "locked",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

// ForumPostRepo implements repository.ForumPostRepository on PostgreSQL.
type ForumPostRepo struct {
	*Table[entity.ForumPost]
}

// NewForumPostRepository builds the forum_posts adapter.
func NewForumPostRepository(q Querier) *ForumPostRepo {
	return &ForumPostRepo{Table: NewTable[entity.ForumPost](q, "forum_posts", forumPostFields)}
}

// Create inserts a post.
func (r *ForumPostRepo) Create(ctx context.Context, p *entity.ForumPost) error {
	if p.Comments == nil {
		p.Comments = []entity.Comment{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	query := `
		INSERT INTO forum_posts (id, title, content, category, author_id, author_name, comments, tags,
			likes, views, pinned, locked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title, p.Content, p.Category, p.AuthorID, p.AuthorName, p.Comments, p.Tags,
		p.Likes, p.Views, p.Pinned, p.Locked, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert forum post: %w", err)
	}
	return nil
}

// GetByID returns the post or nil.
func (r *ForumPostRepo) GetByID(ctx context.Context, id string) (*entity.ForumPost, error) {
	return r.Get(ctx, id)
}

// AppendComment adds a comment unless the post is locked. It returns nil when
// the post does not exist or is locked; callers tell the two apart with GetByID.
func (r *ForumPostRepo) AppendComment(ctx context.Context, id string, c entity.Comment) (*entity.ForumPost, error) {
	p, err := r.One(ctx, `
		UPDATE forum_posts SET comments = comments || jsonb_build_array($2::jsonb), updated_at = now()
		WHERE id = $1 AND NOT locked RETURNING *`, id, c)
	if err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return p, nil
}
