package entity

import "time"

// Comment on a forum post.
type Comment struct {
	ID         string    `json:"_id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ForumPost is a community discussion thread.
type ForumPost struct {
	ID         string    `db:"id" json:"_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	Category   string    `db:"category" json:"category"`
	AuthorID   string    `db:"author_id" json:"authorId"`
	AuthorName string    `db:"author_name" json:"authorName"`
	Comments   []Comment `db:"comments" json:"comments"`
	Tags       []string  `db:"tags" json:"tags"`
	Likes      int       `db:"likes" json:"likes"`
	Views      int       `db:"views" json:"views"`
	Pinned     bool      `db:"pinned" json:"pinned"`
	Locked     bool      `db:"locked" json:"locked"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
