package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/ports"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// DonationUseCase monetary donations and their receipts.
type DonationUseCase struct {
	repo          repository.DonationRepository
	notifications repository.NotificationRepository
	receipts      ports.ReceiptGenerator
	orgName       string
	log           *logger.Logger
}

// NewDonationUseCase builds the use case. receipts may be nil, in which case
// Receipt always fails.
func NewDonationUseCase(repo repository.DonationRepository, notifications repository.NotificationRepository, receipts ports.ReceiptGenerator, orgName string, log *logger.Logger) *DonationUseCase {
	return &DonationUseCase{repo: repo, notifications: notifications, receipts: receipts, orgName: orgName, log: log.Named("donations")}
}

// List pages donations, newest first.
func (uc *DonationUseCase) List(ctx context.Context, f dto.DonationFilter, q dto.ListQuery) (*pagination.Result[*entity.Donation], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate[*entity.Donation](ctx, uc.repo, pagination.Filter{}.EqIf("status", f.Status), opts)
}

// Get returns one donation.
func (uc *DonationUseCase) Get(ctx context.Context, id string) (*entity.Donation, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// Create records a PENDING donation. donorID is empty for anonymous callers.
func (uc *DonationUseCase) Create(ctx context.Context, donorID string, in dto.CreateDonationRequest) (*entity.Donation, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	d := &entity.Donation{
		ID:            objectid.New(),
		DonorName:     in.DonorName,
		DonorEmail:    strings.ToLower(strings.TrimSpace(in.DonorEmail)),
		Amount:        in.Amount.Round(2),
		PaymentMethod: in.PaymentMethod,
		TransactionID: "TXN-" + strings.ToUpper(uuid.NewString()),
		Status:        entity.DonationPending,
		Purpose:       in.Purpose,
		Message:       in.Message,
		Anonymous:     in.Anonymous,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if d.Purpose == "" {
		d.Purpose = entity.DefaultPurpose
	}
	if donorID != "" {
		d.DonorID = &donorID
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateStatus moves a donation to status. Completion thanks the donor.
func (uc *DonationUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Donation, error) {
	d, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if d.Status == entity.DonationCompleted {
		if err := notifyDonationReceived(ctx, uc.notifications, d); err != nil {
			uc.log.Warn().Err(err).Str("donation_id", d.ID).Msg("donation notification")
		}
	}
	return d, nil
}

// Stats sums completed donations.
func (uc *DonationUseCase) Stats(ctx context.Context) (*dto.DonationStats, error) {
	total, n, err := uc.repo.SumCompleted(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DonationStats{TotalAmount: total, TotalDonations: n}, nil
}

// Receipt renders the PDF receipt of a completed donation.
func (uc *DonationUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	d, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != entity.DonationCompleted || uc.receipts == nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.receipts.GenerateDonationReceipt(d, uc.orgName)
}
