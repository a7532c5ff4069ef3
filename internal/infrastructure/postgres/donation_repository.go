package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

var donationFields = map[string]string{
	"id":             "id",
	"donorId":        "donor_id",
	"donorName":      "donor_name",
	"donorEmail":     "donor_email",
	"amount":         "amount",
	"paymentMethod":  "payment_method",
	"transactionId":  "transaction_id",
	"status":         "status",
	"purpose":        "purpose",
	"message":        "message",
	"anonymous":      "anonymous",
	"taxReceiptSent": "tax_receipt_sent",
	"completedAt":    "completed_at",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// DonationRepo implements repository.DonationRepository on PostgreSQL.
type DonationRepo struct {
	*Table[entity.Donation]
}

// NewDonationRepository builds the donations adapter.
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{Table: NewTable[entity.Donation](q, "donations", donationFields)}
}

// Create inserts a donation.
func (r *DonationRepo) Create(ctx context.Context, d *entity.Donation) error {
	query := `
		INSERT INTO donations (id, donor_id, donor_name, donor_email, amount, payment_method, transaction_id,
			status, purpose, message, anonymous, tax_receipt_sent, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.DonorID, d.DonorName, d.DonorEmail, d.Amount, d.PaymentMethod, d.TransactionID,
		d.Status, d.Purpose, d.Message, d.Anonymous, d.TaxReceiptSent, d.CompletedAt, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetByID returns the donation or nil.
func (r *DonationRepo) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	return r.Get(ctx, id)
}

// UpdateStatus sets the status; COMPLETED also stamps completed_at.
func (r *DonationRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Donation, error) {
	d, err := r.One(ctx, `
		UPDATE donations SET status = $2,
			completed_at = CASE WHEN $2 = 'COMPLETED' THEN now() ELSE completed_at END,
			updated_at = now()
		WHERE id = $1 RETURNING *`, id, status)
	if err != nil {
		return nil, fmt.Errorf("update donation status: %w", err)
	}
	return d, nil
}

// SumCompleted returns the total amount and count of completed donations.
func (r *DonationRepo) SumCompleted(ctx context.Context) (decimal.Decimal, int64, error) {
	var (
		total decimal.Decimal
		n     int64
	)
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(sum(amount), 0), count(*) FROM donations WHERE status = $1`,
		entity.DonationCompleted,
	).Scan(&total, &n)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum donations: %w", err)
	}
	return total, n, nil
}
