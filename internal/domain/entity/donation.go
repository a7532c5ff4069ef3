package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation payment states.
const (
	DonationPending   = "PENDING"
	DonationCompleted = "COMPLETED"
	DonationFailed    = "FAILED"
	DonationRefunded  = "REFUNDED"
)

// DefaultPurpose is stored when a donation names none.
const DefaultPurpose = "General"

// Donation is a monetary contribution.
type Donation struct {
	ID             string          `db:"id" json:"_id"`
	DonorID        *string         `db:"donor_id" json:"donorId,omitempty"`
	DonorName      string          `db:"donor_name" json:"donorName"`
	DonorEmail     string          `db:"donor_email" json:"donorEmail"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod  string          `db:"payment_method" json:"paymentMethod"`
	TransactionID  string          `db:"transaction_id" json:"transactionId"`
	Status         string          `db:"status" json:"status"`
	Purpose        string          `db:"purpose" json:"purpose"`
	Message        string          `db:"message" json:"message,omitempty"`
	Anonymous      bool            `db:"anonymous" json:"anonymous"`
	TaxReceiptSent bool            `db:"tax_receipt_sent" json:"taxReceiptSent"`
	CompletedAt    *time.Time      `db:"completed_at" json:"completedAt,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// DisplayName hides the donor behind "Anonymous" when requested.
func (d *Donation) DisplayName() string {
	if d.Anonymous {
		return "Anonymous"
	}
	return d.DonorName
}
