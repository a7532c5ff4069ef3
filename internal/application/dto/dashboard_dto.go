package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats response of GET /api/dashboard/stats.
type DashboardStats struct {
	Reports    ReportStats    `json:"reports"`
	Adoptions  AdoptionStats  `json:"adoptions"`
	Donations  DonationTotals `json:"donations"`
	Volunteers VolunteerStats `json:"volunteers"`
}

type ReportStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Rescued int64 `json:"rescued"`
}

type AdoptionStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
}

type DonationTotals struct {
	Total       int64           `json:"total"`
	Completed   int64           `json:"completed"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type VolunteerStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// Activity kinds in the feed.
const (
	ActivityReport   = "REPORT"
	ActivityAdoption = "ADOPTION"
	ActivityDonation = "DONATION"
)

// ActivityItem one entry of GET /api/dashboard/activity.
type ActivityItem struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// ChartPoint one day of GET /api/dashboard/charts/reports.
type ChartPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
