package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// memColl is an in-memory pagination.Collection. Only equality filters are
// supported and results keep insertion order.
type memColl[T any] struct {
	mu     sync.Mutex
	items  []T
	id     func(T) string
	fields map[string]func(T) any
}

func (m *memColl[T]) match(f pagination.Filter) []T {
	var out []T
	for _, it := range m.items {
		ok := true
		for _, c := range f {
			get, known := m.fields[c.Field]
			if !known || c.Op != pagination.OpEq || get(it) != c.Value {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

func (m *memColl[T]) Find(_ context.Context, f pagination.Filter, q pagination.Query) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.match(f)
	if q.Skip >= len(all) {
		return []T{}, nil
	}
	return all[q.Skip:min(len(all), q.Skip+q.Limit)], nil
}

func (m *memColl[T]) Count(_ context.Context, f pagination.Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.match(f))), nil
}

func (m *memColl[T]) add(it T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, it)
}

func (m *memColl[T]) get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if m.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (m *memColl[T]) remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if m.id(it) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// ── Dog reports ──────────────────────────────────────────────────────────────

type memReports struct{ memColl[*entity.DogReport] }

func newMemReports() *memReports {
	return &memReports{memColl[*entity.DogReport]{
		id: func(r *entity.DogReport) string { return r.ID },
		fields: map[string]func(*entity.DogReport) any{
			"status":    func(r *entity.DogReport) any { return r.Status },
			"condition": func(r *entity.DogReport) any { return r.Condition },
		},
	}}
}

var _ repository.DogReportRepository = (*memReports)(nil)

func (m *memReports) Create(_ context.Context, r *entity.DogReport) error {
	m.add(r)
	return nil
}

func (m *memReports) GetByID(_ context.Context, id string) (*entity.DogReport, error) {
	r, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memReports) Update(_ context.Context, r *entity.DogReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == r.ID {
			cp := *r
			m.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (m *memReports) AppendNote(_ context.Context, id string, n entity.Note) (*entity.DogReport, error) {
	r, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	r.Notes = append(r.Notes, n)
	cp := *r
	return &cp, nil
}

func (m *memReports) Delete(_ context.Context, id string) (bool, error) {
	return m.remove(id), nil
}

func (m *memReports) CountByDay(context.Context, time.Time) ([]repository.DailyCount, error) {
	return nil, nil
}

// ── Volunteers ───────────────────────────────────────────────────────────────

type memVolunteers struct{ memColl[*entity.Volunteer] }

func newMemVolunteers() *memVolunteers {
	return &memVolunteers{memColl[*entity.Volunteer]{
		id: func(v *entity.Volunteer) string { return v.ID },
		fields: map[string]func(*entity.Volunteer) any{
			"status": func(v *entity.Volunteer) any { return v.Status },
			"role":   func(v *entity.Volunteer) any { return v.Role },
		},
	}}
}

var _ repository.VolunteerRepository = (*memVolunteers)(nil)

func (m *memVolunteers) Create(_ context.Context, v *entity.Volunteer) error {
	m.add(v)
	return nil
}

func (m *memVolunteers) GetByID(_ context.Context, id string) (*entity.Volunteer, error) {
	v, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memVolunteers) GetByUserID(_ context.Context, userID string) (*entity.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.items {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}

func (m *memVolunteers) UpdateStatus(_ context.Context, id, status string) (*entity.Volunteer, error) {
	v, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	v.Status = status
	return v, nil
}

func (m *memVolunteers) AddAssignedCase(_ context.Context, id, reportID string) error {
	v, ok := m.get(id)
	if !ok {
		return errors.New("volunteer missing")
	}
	v.AssignedCases = append(v.AssignedCases, reportID)
	return nil
}

// ── Notifications ────────────────────────────────────────────────────────────

type memNotifications struct {
	memColl[*entity.Notification]
	failCreate bool
}

func newMemNotifications() *memNotifications {
	return &memNotifications{memColl: memColl[*entity.Notification]{
		id: func(n *entity.Notification) string { return n.ID },
		fields: map[string]func(*entity.Notification) any{
			"userId": func(n *entity.Notification) any { return n.UserID },
			"read":   func(n *entity.Notification) any { return n.Read },
		},
	}}
}

var _ repository.NotificationRepository = (*memNotifications)(nil)

func (m *memNotifications) Create(_ context.Context, n *entity.Notification) error {
	if m.failCreate {
		return errors.New("notifications unavailable")
	}
	m.add(n)
	return nil
}

func (m *memNotifications) MarkRead(_ context.Context, id, userID string) (*entity.Notification, error) {
	n, ok := m.get(id)
	if !ok || n.UserID != userID {
		return nil, nil
	}
	n.Read = true
	return n, nil
}

func (m *memNotifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, it := range m.items {
		if it.UserID == userID && !it.Read {
			it.Read = true
			n++
		}
	}
	return n, nil
}

// ── Donations ────────────────────────────────────────────────────────────────

type memDonations struct{ memColl[*entity.Donation] }

func newMemDonations() *memDonations {
	return &memDonations{memColl[*entity.Donation]{
		id: func(d *entity.Donation) string { return d.ID },
		fields: map[string]func(*entity.Donation) any{
			"status": func(d *entity.Donation) any { return d.Status },
		},
	}}
}

var _ repository.DonationRepository = (*memDonations)(nil)

func (m *memDonations) Create(_ context.Context, d *entity.Donation) error {
	m.add(d)
	return nil
}

func (m *memDonations) GetByID(_ context.Context, id string) (*entity.Donation, error) {
	d, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (m *memDonations) UpdateStatus(_ context.Context, id, status string) (*entity.Donation, error) {
	d, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	d.Status = status
	if status == entity.DonationCompleted {
		now := time.Now().UTC()
		d.CompletedAt = &now
	}
	return d, nil
}

func (m *memDonations) SumCompleted(context.Context) (decimal.Decimal, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	var n int64
	for _, d := range m.items {
		if d.Status == entity.DonationCompleted {
			total = total.Add(d.Amount)
			n++
		}
	}
	return total, n, nil
}

// ── Forum ────────────────────────────────────────────────────────────────────

type memPosts struct{ memColl[*entity.ForumPost] }

func newMemPosts() *memPosts {
	return &memPosts{memColl[*entity.ForumPost]{
		id: func(p *entity.ForumPost) string { return p.ID },
		fields: map[string]func(*entity.ForumPost) any{
			"category": func(p *entity.ForumPost) any { return p.Category },
		},
	}}
}

var _ repository.ForumPostRepository = (*memPosts)(nil)

func (m *memPosts) Create(_ context.Context, p *entity.ForumPost) error {
	m.add(p)
	return nil
}

func (m *memPosts) GetByID(_ context.Context, id string) (*entity.ForumPost, error) {
	p, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *memPosts) AppendComment(_ context.Context, id string, c entity.Comment) (*entity.ForumPost, error) {
	p, ok := m.get(id)
	if !ok || p.Locked {
		return nil, nil
	}
	p.Comments = append(p.Comments, c)
	return p, nil
}

// ── Vaccinations ─────────────────────────────────────────────────────────────

type memVaccinations struct{ memColl[*entity.Vaccination] }

func newMemVaccinations() *memVaccinations {
	return &memVaccinations{memColl[*entity.Vaccination]{
		id:     func(v *entity.Vaccination) string { return v.ID },
		fields: map[string]func(*entity.Vaccination) any{},
	}}
}

var _ repository.VaccinationRepository = (*memVaccinations)(nil)

func (m *memVaccinations) Create(_ context.Context, v *entity.Vaccination) error {
	m.add(v)
	return nil
}

func (m *memVaccinations) GetByID(_ context.Context, id string) (*entity.Vaccination, error) {
	v, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memVaccinations) AppendRecord(_ context.Context, id string, rec entity.VaccinationRecord) (*entity.Vaccination, error) {
	v, ok := m.get(id)
	if !ok {
		return nil, nil
	}
	v.Records = append(v.Records, rec)
	return v, nil
}

func (m *memVaccinations) Delete(_ context.Context, id string) (bool, error) {
	return m.remove(id), nil
}

// ── Transactions ─────────────────────────────────────────────────────────────

// memTx runs fn on the shared fakes. There is no rollback; tests assert the
// error only.
type memTx struct {
	repos usecase.TxRepos
	runs  int
}

func (t *memTx) Run(_ context.Context, fn func(tx usecase.TxRepos) error) error {
	t.runs++
	return fn(t.repos)
}
