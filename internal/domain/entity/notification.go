package entity

import "time"

// Notification kinds.
const (
	NotificationInfo              = "INFO"
	NotificationCaseAssigned      = "CASE_ASSIGNED"
	NotificationCaseUpdate        = "CASE_UPDATE"
	NotificationDonationReceived  = "DONATION_RECEIVED"
	NotificationVolunteerApproved = "VOLUNTEER_APPROVED"
	NotificationTaskAssigned      = "TASK_ASSIGNED"
)

// Related entity kinds.
const (
	RelatedDogReport = "DOG_REPORT"
	RelatedVolunteer = "VOLUNTEER"
	RelatedDonation  = "DONATION"
	RelatedTask      = "VOLUNTEER_TASK"
)

// Notification is an in-app message for one user.
type Notification struct {
	ID                string     `db:"id" json:"_id"`
	UserID            string     `db:"user_id" json:"userId"`
	Title             string     `db:"title" json:"title"`
	Message           string     `db:"message" json:"message"`
	Type              string     `db:"type" json:"type"`
	Read              bool       `db:"read" json:"read"`
	RelatedEntityID   string     `db:"related_entity_id" json:"relatedEntityId,omitempty"`
	RelatedEntityType string     `db:"related_entity_type" json:"relatedEntityType,omitempty"`
	ReadAt            *time.Time `db:"read_at" json:"readAt,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updatedAt"`
}
