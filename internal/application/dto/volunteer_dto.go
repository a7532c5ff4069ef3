package dto

// VolunteerFilter optional list filters.
type VolunteerFilter struct {
	Status string `query:"status"`
	Role   string `query:"role"`
}

// RegisterVolunteerRequest body of POST /api/volunteers/register.
type RegisterVolunteerRequest struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Area           string `json:"area"`
	Role           string `json:"role"`
	Availability   string `json:"availability"`
	Address        string `json:"address"`
	Experience     string `json:"experience"`
	Certifications string `json:"certifications"`
}
