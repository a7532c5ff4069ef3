package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// AdoptionUseCase dogs listed for adoption.
type AdoptionUseCase struct {
	repo repository.AdoptionDogRepository
}

// NewAdoptionUseCase builds the use case.
func NewAdoptionUseCase(repo repository.AdoptionDogRepository) *AdoptionUseCase {
	return &AdoptionUseCase{repo: repo}
}

// List pages listed dogs, most recently added first.
func (uc *AdoptionUseCase) List(ctx context.Context, f dto.AdoptionDogFilter, q dto.ListQuery) (*pagination.Result[*entity.AdoptionDog], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit,
		pagination.SortBy(pagination.SortField{Field: "addedDate", Direction: pagination.Desc}))
	if err != nil {
		return nil, err
	}
	filter := pagination.Filter{}.EqIf("status", f.Status).EqIf("size", f.Size).EqIf("gender", f.Gender)
	return pagination.Paginate[*entity.AdoptionDog](ctx, uc.repo, filter, opts)
}

// Get returns one listed dog.
func (uc *AdoptionUseCase) Get(ctx context.Context, id string) (*entity.AdoptionDog, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// Create lists a new AVAILABLE dog added by addedBy.
func (uc *AdoptionUseCase) Create(ctx context.Context, addedBy string, in dto.CreateAdoptionDogRequest) (*entity.AdoptionDog, error) {
	now := time.Now().UTC()
	d := &entity.AdoptionDog{
		ID:           objectid.New(),
		Name:         in.Name,
		Breed:        in.Breed,
		Age:          in.Age,
		Gender:       in.Gender,
		Size:         in.Size,
		Description:  in.Description,
		Photos:       in.Photos,
		HealthStatus: in.HealthStatus,
		Vaccinated:   in.Vaccinated,
		Neutered:     in.Neutered,
		Temperament:  in.Temperament,
		GoodWithKids: in.GoodWithKids,
		GoodWithPets: in.GoodWithPets,
		SpecialNeeds: in.SpecialNeeds,
		Status:       entity.AdoptionAvailable,
		AddedDate:    now,
		UpdatedDate:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if addedBy != "" {
		d.AddedBy = &addedBy
	}
	if d.Photos == nil {
		d.Photos = []string{}
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies the non-nil fields of in.
func (uc *AdoptionUseCase) Update(ctx context.Context, id string, in dto.UpdateAdoptionDogRequest) (*entity.AdoptionDog, error) {
	if !oneOf(in.Gender, entity.Genders) || !oneOf(in.Size, entity.Sizes) || !oneOf(in.Status, entity.AdoptionStatuses) {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	assign(&d.Name, in.Name)
	assign(&d.Breed, in.Breed)
	assign(&d.Gender, in.Gender)
	assign(&d.Size, in.Size)
	assign(&d.Description, in.Description)
	assign(&d.Photos, in.Photos)
	assign(&d.HealthStatus, in.HealthStatus)
	assign(&d.Vaccinated, in.Vaccinated)
	assign(&d.Neutered, in.Neutered)
	assign(&d.Temperament, in.Temperament)
	assign(&d.GoodWithKids, in.GoodWithKids)
	assign(&d.GoodWithPets, in.GoodWithPets)
	assign(&d.SpecialNeeds, in.SpecialNeeds)
	assign(&d.Status, in.Status)
	if in.Age != nil {
		d.Age = in.Age
	}
	now := time.Now().UTC()
	d.UpdatedDate = now
	d.UpdatedAt = now
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateStatus moves a listing between AVAILABLE, PENDING and ADOPTED.
func (uc *AdoptionUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.AdoptionDog, error) {
	return uc.Update(ctx, id, dto.UpdateAdoptionDogRequest{Status: &status})
}

// Delete removes a listing.
func (uc *AdoptionUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
