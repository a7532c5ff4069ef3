package dto

// AdoptionDogFilter optional list filters.
type AdoptionDogFilter struct {
	Status string `query:"status"`
	Size   string `query:"size"`
	Gender string `query:"gender"`
}

// CreateAdoptionDogRequest body of POST /api/adoptions.
type CreateAdoptionDogRequest struct {
	Name         string   `json:"name"`
	Breed        string   `json:"breed"`
	Age          *int     `json:"age"`
	Gender       string   `json:"gender"`
	Size         string   `json:"size"`
	Description  string   `json:"description"`
	Photos       []string `json:"photos"`
	HealthStatus string   `json:"healthStatus"`
	Vaccinated   bool     `json:"vaccinated"`
	Neutered     bool     `json:"neutered"`
	Temperament  string   `json:"temperament"`
	GoodWithKids bool     `json:"goodWithKids"`
	GoodWithPets bool     `json:"goodWithPets"`
	SpecialNeeds string   `json:"specialNeeds"`
}

// UpdateAdoptionDogRequest body of PUT /api/adoptions/:id. Nil fields are kept.
type UpdateAdoptionDogRequest struct {
	Name         *string   `json:"name"`
	Breed        *string   `json:"breed"`
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	Size         *string   `json:"size"`
	Description  *string   `json:"description"`
	Photos       *[]string `json:"photos"`
	HealthStatus *string   `json:"healthStatus"`
	Vaccinated   *bool     `json:"vaccinated"`
	Neutered     *bool     `json:"neutered"`
	Temperament  *string   `json:"temperament"`
	GoodWithKids *bool     `json:"goodWithKids"`
	GoodWithPets *bool     `json:"goodWithPets"`
	SpecialNeeds *string   `json:"specialNeeds"`
	Status       *string   `json:"status"`
}
