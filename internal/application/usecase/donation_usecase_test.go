package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/logger"
)

type stubReceipts struct {
	called bool
	err    error
}

func (s *stubReceipts) GenerateDonationReceipt(d *entity.Donation, orgName string) ([]byte, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-" + d.TransactionID + "-" + orgName), nil
}

func newDonationUC() (*usecase.DonationUseCase, *memDonations, *memNotifications, *stubReceipts) {
	repo, notes, receipts := newMemDonations(), newMemNotifications(), &stubReceipts{}
	return usecase.NewDonationUseCase(repo, notes, receipts, "Stray Dog Care", logger.Nop()), repo, notes, receipts
}

func TestDonationCreate(t *testing.T) {
	uc, _, _, _ := newDonationUC()

	d, err := uc.Create(context.Background(), "", dto.CreateDonationRequest{
		DonorName: "Priya", DonorEmail: "Priya@Example.com", Amount: decimal.RequireFromString("0.505"), PaymentMethod: "UPI",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DonationPending, d.Status)
	assert.Equal(t, entity.DefaultPurpose, d.Purpose)
	assert.Nil(t, d.DonorID)
	assert.True(t, strings.HasPrefix(d.TransactionID, "TXN-"))
	assert.Equal(t, "0.51", d.Amount.StringFixed(2))
	assert.Equal(t, "priya@example.com", d.DonorEmail)
}

func TestDonationCreate_RejectsNonPositive(t *testing.T) {
	uc, _, _, _ := newDonationUC()
	_, err := uc.Create(context.Background(), "", dto.CreateDonationRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDonationComplete_NotifiesDonorAndCountsInStats(t *testing.T) {
	uc, _, notes, _ := newDonationUC()
	d, err := uc.Create(context.Background(), "donor-1", dto.CreateDonationRequest{DonorName: "A", Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "", dto.CreateDonationRequest{DonorName: "B", Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), d.ID, entity.DonationCompleted)
	require.NoError(t, err)
	assert.NotNil(t, out.CompletedAt)

	require.Len(t, notes.items, 1)
	assert.Equal(t, "donor-1", notes.items[0].UserID)
	assert.Equal(t, "Thank you for your donation of 500.00!", notes.items[0].Message)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalDonations)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestDonationReceipt(t *testing.T) {
	uc, _, _, receipts := newDonationUC()
	d, err := uc.Create(context.Background(), "", dto.CreateDonationRequest{DonorName: "A", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = uc.Receipt(context.Background(), d.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pending donations have no receipt")
	assert.False(t, receipts.called)

	_, err = uc.UpdateStatus(context.Background(), d.ID, entity.DonationCompleted)
	require.NoError(t, err)
	out, err := uc.Receipt(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Contains(t, string(out), d.TransactionID)

	receipts.err = errors.New("render failed")
	_, err = uc.Receipt(context.Background(), d.ID)
	assert.Error(t, err)

	_, err = uc.Receipt(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
