package dto

// VolunteerTaskFilter optional list filters.
type VolunteerTaskFilter struct {
	VolunteerID string `query:"volunteerId"`
	Status      string `query:"status"`
	Priority    string `query:"priority"`
}

// CreateVolunteerTaskRequest body of POST /api/volunteer-tasks.
// DueDate is an ISO-8601 string, already checked by the rule set.
type CreateVolunteerTaskRequest struct {
	VolunteerID string `json:"volunteerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Notes       string `json:"notes"`
}

// UpdateVolunteerTaskRequest body of PUT /api/volunteer-tasks/:id. Nil fields are kept.
type UpdateVolunteerTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
	Notes       *string `json:"notes"`
}

// TaskStatusRequest body of PATCH /api/volunteer-tasks/:id/status.
type TaskStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}
