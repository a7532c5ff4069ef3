package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

type memAdoptions struct{ memColl[*entity.AdoptionDog] }

var _ repository.AdoptionDogRepository = (*memAdoptions)(nil)

func newMemAdoptions() *memAdoptions {
	return &memAdoptions{memColl[*entity.AdoptionDog]{
		id: func(d *entity.AdoptionDog) string { return d.ID },
		fields: map[string]func(*entity.AdoptionDog) any{
			"status": func(d *entity.AdoptionDog) any { return d.Status },
			"size":   func(d *entity.AdoptionDog) any { return d.Size },
			"gender": func(d *entity.AdoptionDog) any { return d.Gender },
		},
	}}
}

func (m *memAdoptions) Create(_ context.Context, d *entity.AdoptionDog) error {
	m.add(d)
	return nil
}

func (m *memAdoptions) GetByID(_ context.Context, id string) (*entity.AdoptionDog, error) {
	d, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *memAdoptions) Update(_ context.Context, d *entity.AdoptionDog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == d.ID {
			m.items[i] = d
		}
	}
	return nil
}

func (m *memAdoptions) Delete(_ context.Context, id string) (bool, error) {
	return m.remove(id), nil
}

func (m *memAdoptions) ExistsByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.items {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestAdoptionLifecycle(t *testing.T) {
	repo := newMemAdoptions()
	uc := usecase.NewAdoptionUseCase(repo)
	ctx := context.Background()
	age := 18

	d, err := uc.Create(ctx, "admin-1", dto.CreateAdoptionDogRequest{Name: "Luna", Age: &age, Gender: "FEMALE", Size: "MEDIUM"})
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionAvailable, d.Status)
	assert.NotNil(t, d.Photos)
	require.NotNil(t, d.AddedBy)
	assert.Equal(t, "admin-1", *d.AddedBy)

	before := d.UpdatedDate
	time.Sleep(time.Millisecond)
	status := entity.AdoptionAdopted
	out, err := uc.Update(ctx, d.ID, dto.UpdateAdoptionDogRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionAdopted, out.Status)
	assert.Equal(t, "Luna", out.Name)
	assert.True(t, out.UpdatedDate.After(before))

	res, err := uc.List(ctx, dto.AdoptionDogFilter{Status: entity.AdoptionAvailable}, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)

	require.NoError(t, uc.Delete(ctx, d.ID))
	_, err = uc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdoptionUpdate_RejectsValuesOutsideTheSets(t *testing.T) {
	repo := newMemAdoptions()
	uc := usecase.NewAdoptionUseCase(repo)
	ctx := context.Background()

	d, err := uc.Create(ctx, "", dto.CreateAdoptionDogRequest{Name: "Kaali", Gender: entity.GenderFemale, Size: entity.SizeSmall})
	require.NoError(t, err)

	lower, huge, gone := "female", "HUGE", "GONE"
	for _, in := range []dto.UpdateAdoptionDogRequest{{Gender: &lower}, {Size: &huge}, {Status: &gone}} {
		_, err := uc.Update(ctx, d.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	stored, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GenderFemale, stored.Gender)
	assert.Equal(t, entity.SizeSmall, stored.Size)
	assert.Equal(t, entity.AdoptionAvailable, stored.Status)
}

func TestAdoptionUpdateStatus(t *testing.T) {
	uc := usecase.NewAdoptionUseCase(newMemAdoptions())
	ctx := context.Background()

	d, err := uc.Create(ctx, "", dto.CreateAdoptionDogRequest{Name: "Sheru", Gender: entity.GenderMale, Size: entity.SizeLarge})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(ctx, d.ID, entity.AdoptionPending)
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionPending, out.Status)
	assert.Equal(t, "Sheru", out.Name)

	_, err = uc.UpdateStatus(ctx, d.ID, "adopted")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus(ctx, "507f1f77bcf86cd799439011", entity.AdoptionAdopted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
