package dto

// VaccinationFilter optional list filters.
type VaccinationFilter struct {
	DogReportID string `query:"dogReportId"`
}

// VaccinationRecordRequest one record in a create or append request.
// Dates are ISO-8601 strings, already checked by the record rule set.
type VaccinationRecordRequest struct {
	VaccineName      string `json:"vaccineName"`
	Type             string `json:"type"`
	DateAdministered string `json:"dateAdministered"`
	NextDueDate      string `json:"nextDueDate"`
	BatchNumber      string `json:"batchNumber"`
	AdministeredBy   string `json:"administeredBy"`
	Notes            string `json:"notes"`
	Completed        *bool  `json:"completed"`
}

// CreateVaccinationRequest body of POST /api/vaccinations.
type CreateVaccinationRequest struct {
	DogReportID    string                     `json:"dogReportId"`
	DogName        string                     `json:"dogName"`
	DogDescription string                     `json:"dogDescription"`
	VetName        string                     `json:"vetName"`
	Location       string                     `json:"location"`
	Notes          string                     `json:"notes"`
	Records        []VaccinationRecordRequest `json:"records"`
}
