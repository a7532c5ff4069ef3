// Package analytics contains the read-only dashboard use cases: counters,
// the recent activity feed and the daily report chart.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// Chart periods accepted by ReportChart.
const (
	Period7Days  = "7days"
	Period30Days = "30days"
)

const defaultActivityLimit = 10

// DashboardUseCase builds the admin dashboard.
type DashboardUseCase struct {
	reports    repository.DogReportRepository
	adoptions  repository.AdoptionDogRepository
	donations  repository.DonationRepository
	volunteers repository.VolunteerRepository
	now        func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	reports repository.DogReportRepository,
	adoptions repository.AdoptionDogRepository,
	donations repository.DonationRepository,
	volunteers repository.VolunteerRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		reports:    reports,
		adoptions:  adoptions,
		donations:  donations,
		volunteers: volunteers,
		now:        time.Now,
	}
}

// Stats runs the nine counters and the completed donation sum concurrently.
// The first failing query cancels the rest.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var out dto.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, c repository.Counter, f pagination.Filter) {
		g.Go(func() error {
			n, err := c.Count(gctx, f)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	byStatus := func(s string) pagination.Filter { return pagination.Where(pagination.Eq("status", s)) }

	count(&out.Reports.Total, uc.reports, nil)
	count(&out.Reports.Pending, uc.reports, byStatus(entity.ReportPending))
	count(&out.Reports.Rescued, uc.reports, byStatus(entity.ReportRescued))
	count(&out.Adoptions.Total, uc.adoptions, nil)
	count(&out.Adoptions.Available, uc.adoptions, byStatus(entity.AdoptionAvailable))
	count(&out.Donations.Total, uc.donations, nil)
	count(&out.Donations.Completed, uc.donations, byStatus(entity.DonationCompleted))
	count(&out.Volunteers.Total, uc.volunteers, nil)
	count(&out.Volunteers.Active, uc.volunteers, byStatus(entity.VolunteerActive))

	g.Go(func() error {
		total, _, err := uc.donations.SumCompleted(gctx)
		if err != nil {
			return err
		}
		out.Donations.TotalAmount = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &out, nil
}

// Activity merges the latest reports, listed dogs and completed donations,
// newest first, keeping at most limit entries. limit <= 0 means the default.
func (uc *DashboardUseCase) Activity(ctx context.Context, limit int) ([]dto.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	limit = min(limit, pagination.MaxLimit)
	latest := func(field string) pagination.Query {
		return pagination.Query{
			Sort:  []pagination.SortField{{Field: field, Direction: pagination.Desc}},
			Limit: limit,
		}
	}

	var (
		reports   []*entity.DogReport
		adoptions []*entity.AdoptionDog
		donations []*entity.Donation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reports, err = uc.reports.Find(gctx, nil, latest("createdAt"))
		return err
	})
	g.Go(func() (err error) {
		adoptions, err = uc.adoptions.Find(gctx, nil, latest("addedDate"))
		return err
	})
	g.Go(func() (err error) {
		donations, err = uc.donations.Find(gctx, pagination.Where(pagination.Eq("status", entity.DonationCompleted)), latest("createdAt"))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard activity: %w", err)
	}

	items := make([]dto.ActivityItem, 0, len(reports)+len(adoptions)+len(donations))
	items = append(items, lo.Map(reports, func(r *entity.DogReport, _ int) dto.ActivityItem {
		return dto.ActivityItem{
			Type:        dto.ActivityReport,
			Title:       "New dog report: " + lo.Ternary(r.DogName == "", "Unnamed", r.DogName),
			Description: "Reported by " + r.ReporterName,
			Date:        r.CreatedAt,
		}
	})...)
	items = append(items, lo.Map(adoptions, func(a *entity.AdoptionDog, _ int) dto.ActivityItem {
		return dto.ActivityItem{
			Type:        dto.ActivityAdoption,
			Title:       a.Name + " added for adoption",
			Description: "Status: " + a.Status,
			Date:        a.AddedDate,
		}
	})...)
	items = append(items, lo.Map(donations, func(d *entity.Donation, _ int) dto.ActivityItem {
		return dto.ActivityItem{
			Type:        dto.ActivityDonation,
			Title:       "Donation received",
			Description: formatAmount(d.Amount) + " from " + d.DisplayName(),
			Date:        d.CreatedAt,
		}
	})...)

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ReportChart returns the number of reports created per day over period,
// oldest day first. Days without reports are omitted.
func (uc *DashboardUseCase) ReportChart(ctx context.Context, period string) ([]dto.ChartPoint, error) {
	var days int
	switch period {
	case "", Period7Days:
		days = 7
	case Period30Days:
		days = 30
	default:
		return nil, domain.ErrInvalidInput
	}
	since := uc.now().UTC().AddDate(0, 0, -days)
	counts, err := uc.reports.CountByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("report chart: %w", err)
	}
	return lo.Map(counts, func(c repository.DailyCount, _ int) dto.ChartPoint {
		return dto.ChartPoint{Date: c.Date, Count: c.Count}
	}), nil
}

func formatAmount(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}
