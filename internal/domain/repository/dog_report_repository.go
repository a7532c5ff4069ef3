package repository

import (
	"context"
	"time"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// DogReportRepository is the persistence port for DogReport.
type DogReportRepository interface {
	pagination.Collection[*entity.DogReport]

	Create(ctx context.Context, r *entity.DogReport) error
	GetByID(ctx context.Context, id string) (*entity.DogReport, error)
	Update(ctx context.Context, r *entity.DogReport) error
	AppendNote(ctx context.Context, id string, n entity.Note) (*entity.DogReport, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByDay(ctx context.Context, since time.Time) ([]DailyCount, error)
}

// DailyCount is the number of items created on one calendar day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `db:"date" json:"date"`
	Count int64  `db:"count" json:"count"`
}
