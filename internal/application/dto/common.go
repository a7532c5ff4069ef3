package dto

// ListQuery is the page part of every list request, read from the query string
// after the pagination rule set accepted it.
type ListQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// StatusRequest body of the PATCH .../status endpoints.
type StatusRequest struct {
	Status string `json:"status"`
}

// ContentRequest body of note and comment endpoints.
type ContentRequest struct {
	Content string `json:"content"`
}

// CountResponse wraps a single counter.
type CountResponse struct {
	Count int64 `json:"count"`
}
