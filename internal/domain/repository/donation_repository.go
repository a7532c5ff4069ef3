package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// DonationRepository is the persistence port for Donation.
type DonationRepository interface {
	pagination.Collection[*entity.Donation]

	Create(ctx context.Context, d *entity.Donation) error
	GetByID(ctx context.Context, id string) (*entity.Donation, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Donation, error)
	// SumCompleted returns the total amount and number of COMPLETED donations.
	SumCompleted(ctx context.Context) (decimal.Decimal, int64, error)
}
