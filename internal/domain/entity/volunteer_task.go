package entity

import "time"

// Task priorities.
const (
	TaskLow    = "LOW"
	TaskMedium = "MEDIUM"
	TaskHigh   = "HIGH"
	TaskUrgent = "URGENT"
)

// Task lifecycle.
const (
	TaskPending    = "PENDING"
	TaskInProgress = "IN_PROGRESS"
	TaskCompleted  = "COMPLETED"
	TaskCancelled  = "CANCELLED"
)

var (
	TaskPriorities = []string{TaskLow, TaskMedium, TaskHigh, TaskUrgent}
	TaskStatuses   = []string{TaskPending, TaskInProgress, TaskCompleted, TaskCancelled}
)

// VolunteerTask is a piece of work handed to one volunteer.
type VolunteerTask struct {
	ID            string     `db:"id" json:"_id"`
	VolunteerID   string     `db:"volunteer_id" json:"volunteerId"`
	VolunteerName string     `db:"volunteer_name" json:"volunteerName"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description,omitempty"`
	Priority      string     `db:"priority" json:"priority"`
	Status        string     `db:"status" json:"status"`
	DueDate       *time.Time `db:"due_date" json:"dueDate,omitempty"`
	AssignedDate  time.Time  `db:"assigned_date" json:"assignedDate"`
	CompletedDate *time.Time `db:"completed_date" json:"completedDate,omitempty"`
	Notes         string     `db:"notes" json:"notes,omitempty"`
	CreatedBy     *string    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}
