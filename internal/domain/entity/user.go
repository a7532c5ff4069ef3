package entity

import "time"

// Valid roles for User.
const (
	RoleUser      = "USER"
	RoleVolunteer = "VOLUNTEER"
	RoleAdmin     = "ADMIN"
)

// User is an account of the platform.
type User struct {
	ID           string    `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Contact      string    `db:"contact" json:"contact,omitempty"`
	Role         string    `db:"role" json:"role"`
	ProfileImage string    `db:"profile_image" json:"profileImage,omitempty"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
