package entity

import "time"

// VaccinationRecord is one dose or treatment.
type VaccinationRecord struct {
	VaccineName      string     `json:"vaccineName"`
	Type             string     `json:"type"`
	DateAdministered time.Time  `json:"dateAdministered"`
	NextDueDate      *time.Time `json:"nextDueDate,omitempty"`
	BatchNumber      string     `json:"batchNumber,omitempty"`
	AdministeredBy   string     `json:"administeredBy,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Completed        bool       `json:"completed"`
}

// Vaccination is the vaccination card of a dog.
type Vaccination struct {
	ID             string              `db:"id" json:"_id"`
	DogReportID    *string             `db:"dog_report_id" json:"dogReportId,omitempty"`
	DogName        string              `db:"dog_name" json:"dogName"`
	DogDescription string              `db:"dog_description" json:"dogDescription,omitempty"`
	Records        []VaccinationRecord `db:"records" json:"records"`
	VetID          *string             `db:"vet_id" json:"vetId,omitempty"`
	VetName        string              `db:"vet_name" json:"vetName,omitempty"`
	Location       string              `db:"location" json:"location,omitempty"`
	Notes          string              `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time           `db:"updated_at" json:"updatedAt"`
}
