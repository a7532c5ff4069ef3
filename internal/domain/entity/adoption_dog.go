package entity

import "time"

// Adoption dog availability.
const (
	AdoptionAvailable = "AVAILABLE"
	AdoptionPending   = "PENDING"
	AdoptionAdopted   = "ADOPTED"
)

// Listing attributes.
const (
	GenderMale    = "MALE"
	GenderFemale  = "FEMALE"
	GenderUnknown = "UNKNOWN"

	SizeSmall  = "SMALL"
	SizeMedium = "MEDIUM"
	SizeLarge  = "LARGE"
)

var (
	AdoptionStatuses = []string{AdoptionAvailable, AdoptionPending, AdoptionAdopted}
	Genders          = []string{GenderMale, GenderFemale, GenderUnknown}
	Sizes            = []string{SizeSmall, SizeMedium, SizeLarge}
)

// AdoptionDog is a rescued dog listed for adoption.
type AdoptionDog struct {
	ID           string    `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Breed        string    `db:"breed" json:"breed,omitempty"`
	Age          *int      `db:"age" json:"age,omitempty"` // months
	Gender       string    `db:"gender" json:"gender"`
	Size         string    `db:"size" json:"size"`
	Description  string    `db:"description" json:"description,omitempty"`
	Photos       []string  `db:"photos" json:"photos"`
	HealthStatus string    `db:"health_status" json:"healthStatus,omitempty"`
	Vaccinated   bool      `db:"vaccinated" json:"vaccinated"`
	Neutered     bool      `db:"neutered" json:"neutered"`
	Temperament  string    `db:"temperament" json:"temperament,omitempty"`
	GoodWithKids bool      `db:"good_with_kids" json:"goodWithKids"`
	GoodWithPets bool      `db:"good_with_pets" json:"goodWithPets"`
	SpecialNeeds string    `db:"special_needs" json:"specialNeeds,omitempty"`
	Status       string    `db:"status" json:"status"`
	AddedBy      *string   `db:"added_by" json:"addedBy,omitempty"`
	AddedDate    time.Time `db:"added_date" json:"addedDate"`
	UpdatedDate  time.Time `db:"updated_date" json:"updatedDate"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
