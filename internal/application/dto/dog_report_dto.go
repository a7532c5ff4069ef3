package dto

import (
	"time"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

// DogReportFilter optional list filters.
type DogReportFilter struct {
	Status    string `query:"status"`
	Condition string `query:"condition"`
}

// CreateDogReportRequest body of POST /api/dog-reports.
type CreateDogReportRequest struct {
	DogName         string        `json:"dogName"`
	Description     string        `json:"description"`
	Condition       string        `json:"condition"`
	Location        string        `json:"location"`
	Coordinates     *entity.Point `json:"coordinates"`
	PhotoURL        string        `json:"photoUrl"`
	ReporterName    string        `json:"reporterName"`
	ReporterContact string        `json:"reporterContact"`
	Tags            []string      `json:"tags"`
	Priority        *int          `json:"priority"`
}

// UpdateDogReportRequest body of PUT /api/dog-reports/:id. Nil fields are kept.
type UpdateDogReportRequest struct {
	DogName         *string       `json:"dogName"`
	Description     *string       `json:"description"`
	Condition       *string       `json:"condition"`
	Location        *string       `json:"location"`
	Coordinates     *entity.Point `json:"coordinates"`
	PhotoURL        *string       `json:"photoUrl"`
	Status          *string       `json:"status"`
	ReporterName    *string       `json:"reporterName"`
	ReporterContact *string       `json:"reporterContact"`
	Tags            *[]string     `json:"tags"`
	Priority        *int          `json:"priority"`
	RescueDate      *time.Time    `json:"rescueDate"`
}

// AssignVolunteerRequest body of PATCH /api/dog-reports/:id/assign.
type AssignVolunteerRequest struct {
	VolunteerID   string `json:"volunteerId"`
	VolunteerName string `json:"volunteerName"`
}
