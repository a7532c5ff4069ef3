package entity

import "time"

// Volunteer application states.
const (
	VolunteerPending  = "PENDING"
	VolunteerApproved = "APPROVED"
	VolunteerActive   = "ACTIVE"
	VolunteerInactive = "INACTIVE"
	VolunteerRejected = "REJECTED"
)

// Volunteer is a user registered to help with rescues.
type Volunteer struct {
	ID             string    `db:"id" json:"_id"`
	UserID         string    `db:"user_id" json:"userId"`
	Name           string    `db:"name" json:"name"`
	Contact        string    `db:"contact" json:"contact"`
	Email          string    `db:"email" json:"email"`
	Area           string    `db:"area" json:"area"`
	Role           string    `db:"role" json:"role"` // FEEDER, RESCUER, VET, TRANSPORT, FOSTER
	Status         string    `db:"status" json:"status"`
	AssignedCases  []string  `db:"assigned_cases" json:"assignedCases"`
	CompletedCases int       `db:"completed_cases" json:"completedCases"`
	Availability   string    `db:"availability" json:"availability,omitempty"`
	Address        string    `db:"address" json:"address,omitempty"`
	Experience     string    `db:"experience" json:"experience,omitempty"`
	Certifications string    `db:"certifications" json:"certifications,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// VolunteerRef is the expanded form of a volunteer reference.
type VolunteerRef struct {
	ID      string `db:"id" json:"_id"`
	Name    string `db:"name" json:"name"`
	Contact string `db:"contact" json:"contact"`
	Email   string `db:"email" json:"email"`
	Role    string `db:"role" json:"role"`
}
