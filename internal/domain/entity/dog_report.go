package entity

import "time"

// Dog report conditions.
const (
	ConditionHealthy      = "HEALTHY"
	ConditionInjured      = "INJURED"
	ConditionSick         = "SICK"
	ConditionMalnourished = "MALNOURISHED"
	ConditionCritical     = "CRITICAL"
)

// Dog report lifecycle.
const (
	ReportPending    = "PENDING"
	ReportAssigned   = "ASSIGNED"
	ReportInProgress = "IN_PROGRESS"
	ReportRescued    = "RESCUED"
	ReportCompleted  = "COMPLETED"
	ReportClosed     = "CLOSED"
)

// Conditions and ReportStatuses are the closed sets a report accepts.
var (
	Conditions     = []string{ConditionHealthy, ConditionInjured, ConditionSick, ConditionMalnourished, ConditionCritical}
	ReportStatuses = []string{ReportPending, ReportAssigned, ReportInProgress, ReportRescued, ReportCompleted, ReportClosed}
)

// DefaultPriority is used when a report is created without one (1..5).
const DefaultPriority = 3

// Note is a free-text entry appended to a report by a logged-in user.
type Note struct {
	Content string    `json:"content"`
	AddedBy string    `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
}

// Point is a [longitude, latitude] pair.
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// DogReport is a sighting of a stray dog that may need rescue.
type DogReport struct {
	ID                    string     `db:"id" json:"_id"`
	DogName               string     `db:"dog_name" json:"dogName,omitempty"`
	Description           string     `db:"description" json:"description"`
	Condition             string     `db:"condition" json:"condition"`
	Location              string     `db:"location" json:"location"`
	Coordinates           *Point     `db:"coordinates" json:"coordinates,omitempty"`
	PhotoURL              string     `db:"photo_url" json:"photoUrl,omitempty"`
	Status                string     `db:"status" json:"status"`
	ReportedBy            *string    `db:"reported_by" json:"reportedBy,omitempty"`
	ReporterName          string     `db:"reporter_name" json:"reporterName"`
	ReporterContact       string     `db:"reporter_contact" json:"reporterContact"`
	AssignedTo            *string    `db:"assigned_to" json:"assignedTo,omitempty"`
	AssignedVolunteerName string     `db:"assigned_volunteer_name" json:"assignedVolunteerName,omitempty"`
	Notes                 []Note     `db:"notes" json:"notes"`
	Tags                  []string   `db:"tags" json:"tags"`
	Priority              int        `db:"priority" json:"priority"`
	RescueDate            *time.Time `db:"rescue_date" json:"rescueDate,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updatedAt"`

	// Filled by relation expansion, never stored.
	Volunteer *VolunteerRef `db:"-" json:"volunteer,omitempty"`
}
