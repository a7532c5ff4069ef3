package dto

import "github.com/shopspring/decimal"

// DonationFilter optional list filters.
type DonationFilter struct {
	Status string `query:"status"`
}

// CreateDonationRequest body of POST /api/donations.
type CreateDonationRequest struct {
	DonorName     string          `json:"donorName"`
	DonorEmail    string          `json:"donorEmail"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Purpose       string          `json:"purpose"`
	Message       string          `json:"message"`
	Anonymous     bool            `json:"anonymous"`
}

// DonationStats completed donations summary.
type DonationStats struct {
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalDonations int64           `json:"totalDonations"`
}
