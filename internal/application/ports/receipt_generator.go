package ports

import "github.com/jhoicas/straydog-api/internal/domain/entity"

// ReceiptGenerator is the output port that renders a donation receipt.
// Implementations return a complete document ready to be streamed to the client.
type ReceiptGenerator interface {
	GenerateDonationReceipt(d *entity.Donation, orgName string) ([]byte, error)
}
