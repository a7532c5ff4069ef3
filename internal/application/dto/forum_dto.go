package dto

// ForumPostFilter optional list filters.
type ForumPostFilter struct {
	Category string `query:"category"`
}

// CreateForumPostRequest body of POST /api/forum.
type CreateForumPostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
