package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// VaccinationUseCase vaccination cards.
type VaccinationUseCase struct {
	repo repository.VaccinationRepository
}

// NewVaccinationUseCase builds the use case.
func NewVaccinationUseCase(repo repository.VaccinationRepository) *VaccinationUseCase {
	return &VaccinationUseCase{repo: repo}
}

// List pages cards, newest first.
func (uc *VaccinationUseCase) List(ctx context.Context, f dto.VaccinationFilter, q dto.ListQuery) (*pagination.Result[*entity.Vaccination], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate[*entity.Vaccination](ctx, uc.repo, pagination.Filter{}.EqIf("dogReportId", f.DogReportID), opts)
}

// Get returns one card.
func (uc *VaccinationUseCase) Get(ctx context.Context, id string) (*entity.Vaccination, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// Create opens a card. vetID is the caller.
func (uc *VaccinationUseCase) Create(ctx context.Context, vetID string, in dto.CreateVaccinationRequest) (*entity.Vaccination, error) {
	records := make([]entity.VaccinationRecord, 0, len(in.Records))
	for _, r := range in.Records {
		rec, err := toRecord(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	now := time.Now().UTC()
	v := &entity.Vaccination{
		ID:             objectid.New(),
		DogReportID:    lo.EmptyableToPtr(in.DogReportID),
		DogName:        in.DogName,
		DogDescription: in.DogDescription,
		Records:        records,
		VetID:          lo.EmptyableToPtr(vetID),
		VetName:        in.VetName,
		Location:       in.Location,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddRecord appends one record to a card.
func (uc *VaccinationUseCase) AddRecord(ctx context.Context, id string, in dto.VaccinationRecordRequest) (*entity.Vaccination, error) {
	rec, err := toRecord(in)
	if err != nil {
		return nil, err
	}
	v, err := uc.repo.AppendRecord(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// Delete removes a card.
func (uc *VaccinationUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toRecord(in dto.VaccinationRecordRequest) (entity.VaccinationRecord, error) {
	administered, ok := validation.ParseISODate(in.DateAdministered)
	if !ok {
		return entity.VaccinationRecord{}, domain.ErrInvalidInput
	}
	rec := entity.VaccinationRecord{
		VaccineName:      in.VaccineName,
		Type:             in.Type,
		DateAdministered: administered.UTC(),
		BatchNumber:      in.BatchNumber,
		AdministeredBy:   in.AdministeredBy,
		Notes:            in.Notes,
		Completed:        lo.FromPtrOr(in.Completed, true),
	}
	if in.NextDueDate != "" {
		due, ok := validation.ParseISODate(in.NextDueDate)
		if !ok {
			return entity.VaccinationRecord{}, domain.ErrInvalidInput
		}
		due = due.UTC()
		rec.NextDueDate = &due
	}
	return rec, nil
}
