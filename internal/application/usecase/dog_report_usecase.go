package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// DogReportUseCase stray dog sightings and their rescue lifecycle.
type DogReportUseCase struct {
	repo          repository.DogReportRepository
	notifications repository.NotificationRepository
	tx            TxRunner
	log           *logger.Logger
}

// NewDogReportUseCase builds the use case.
func NewDogReportUseCase(repo repository.DogReportRepository, notifications repository.NotificationRepository, tx TxRunner, log *logger.Logger) *DogReportUseCase {
	return &DogReportUseCase{repo: repo, notifications: notifications, tx: tx, log: log.Named("dog_reports")}
}

// List pages reports, newest first, with the assigned volunteer expanded.
func (uc *DogReportUseCase) List(ctx context.Context, f dto.DogReportFilter, q dto.ListQuery) (*pagination.Result[*entity.DogReport], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit, pagination.Populate("assignedTo"))
	if err != nil {
		return nil, err
	}
	filter := pagination.Filter{}.EqIf("status", f.Status).EqIf("condition", f.Condition)
	return pagination.Paginate[*entity.DogReport](ctx, uc.repo, filter, opts)
}

// Get returns one report.
func (uc *DogReportUseCase) Get(ctx context.Context, id string) (*entity.DogReport, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Create stores a new PENDING report filed by reporterID.
func (uc *DogReportUseCase) Create(ctx context.Context, reporterID string, in dto.CreateDogReportRequest) (*entity.DogReport, error) {
	now := time.Now().UTC()
	r := &entity.DogReport{
		ID:              objectid.New(),
		DogName:         in.DogName,
		Description:     in.Description,
		Condition:       in.Condition,
		Location:        in.Location,
		Coordinates:     normalizePoint(in.Coordinates),
		PhotoURL:        in.PhotoURL,
		Status:          entity.ReportPending,
		ReportedBy:      lo.EmptyableToPtr(reporterID),
		ReporterName:    in.ReporterName,
		ReporterContact: in.ReporterContact,
		Notes:           []entity.Note{},
		Tags:            lo.Compact(in.Tags),
		Priority:        entity.DefaultPriority,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Priority != nil {
		if *in.Priority < 1 || *in.Priority > 5 {
			return nil, domain.ErrInvalidInput
		}
		r.Priority = *in.Priority
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update applies the non-nil fields of in. A status change notifies the reporter.
func (uc *DogReportUseCase) Update(ctx context.Context, id string, in dto.UpdateDogReportRequest) (*entity.DogReport, error) {
	r, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStatus := r.Status
	if !oneOf(in.Condition, entity.Conditions) || !oneOf(in.Status, entity.ReportStatuses) {
		return nil, domain.ErrInvalidInput
	}

	assign(&r.DogName, in.DogName)
	assign(&r.Description, in.Description)
	assign(&r.Condition, in.Condition)
	assign(&r.Location, in.Location)
	assign(&r.PhotoURL, in.PhotoURL)
	assign(&r.Status, in.Status)
	assign(&r.ReporterName, in.ReporterName)
	assign(&r.ReporterContact, in.ReporterContact)
	assign(&r.Tags, in.Tags)
	if in.Coordinates != nil {
		r.Coordinates = normalizePoint(in.Coordinates)
	}
	if in.Priority != nil {
		if *in.Priority < 1 || *in.Priority > 5 {
			return nil, domain.ErrInvalidInput
		}
		r.Priority = *in.Priority
	}
	if in.RescueDate != nil {
		r.RescueDate = in.RescueDate
	}
	if r.Status == entity.ReportRescued && r.RescueDate == nil {
		now := time.Now().UTC()
		r.RescueDate = &now
	}
	r.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	if r.Status != prevStatus {
		if err := notifyCaseUpdate(ctx, uc.notifications, r, "Your report status changed to "+r.Status); err != nil {
			uc.log.Warn().Err(err).Str("report_id", r.ID).Msg("case update notification")
		}
	}
	return r, nil
}

// Delete removes a report.
func (uc *DogReportUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Assign hands a report to a volunteer, records the case on the volunteer and
// notifies the volunteer's user, all in one transaction.
func (uc *DogReportUseCase) Assign(ctx context.Context, id string, in dto.AssignVolunteerRequest) (*entity.DogReport, error) {
	var out *entity.DogReport
	err := uc.tx.Run(ctx, func(tx TxRepos) error {
		r, err := tx.DogReports.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		v, err := tx.Volunteers.GetByID(ctx, in.VolunteerID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}

		r.AssignedTo = &v.ID
		r.AssignedVolunteerName = in.VolunteerName
		r.Status = entity.ReportAssigned
		r.UpdatedAt = time.Now().UTC()
		if err := tx.DogReports.Update(ctx, r); err != nil {
			return err
		}
		if err := tx.Volunteers.AddAssignedCase(ctx, v.ID, r.ID); err != nil {
			return err
		}
		if err := notifyCaseAssignment(ctx, tx.Notifications, r, v); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddNote appends a note signed with the author's name.
func (uc *DogReportUseCase) AddNote(ctx context.Context, id, authorName, content string) (*entity.DogReport, error) {
	r, err := uc.repo.AppendNote(ctx, id, entity.Note{
		Content: content,
		AddedBy: authorName,
		AddedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// oneOf reports whether an optional enum value is absent or in allowed.
func oneOf(v *string, allowed []string) bool {
	return v == nil || lo.Contains(allowed, *v)
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func normalizePoint(p *entity.Point) *entity.Point {
	if p == nil {
		return nil
	}
	return &entity.Point{Type: "Point", Coordinates: p.Coordinates}
}
