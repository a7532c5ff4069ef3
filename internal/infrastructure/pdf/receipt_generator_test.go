package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

func TestGenerateDonationReceipt(t *testing.T) {
	completed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d := &entity.Donation{
		ID:            "65e1c0ffee0000000000abcd",
		DonorName:     "Priya",
		DonorEmail:    "priya@example.com",
		Amount:        decimal.RequireFromString("1500.5"),
		PaymentMethod: "UPI",
		TransactionID: "TXN-1234ABCD",
		Status:        entity.DonationCompleted,
		Purpose:       entity.DefaultPurpose,
		CompletedAt:   &completed,
		CreatedAt:     completed,
	}

	out, err := NewMarotoReceiptGenerator().GenerateDonationReceipt(d, "Stray Dog Care")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatAmount(t *testing.T) {
	g := NewMarotoReceiptGenerator()
	assert.Equal(t, "INR 1,500.50", g.formatAmount(decimal.RequireFromString("1500.5")))
	assert.Equal(t, "INR 25.00", g.formatAmount(decimal.NewFromInt(25)))
}

func TestReceiptDate_FallsBackToCreation(t *testing.T) {
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, created, receiptDate(&entity.Donation{CreatedAt: created}))
}
