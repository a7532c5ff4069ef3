package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// VolunteerUseCase volunteer applications and their approval.
type VolunteerUseCase struct {
	repo repository.VolunteerRepository
	tx   TxRunner
}

// NewVolunteerUseCase builds the use case.
func NewVolunteerUseCase(repo repository.VolunteerRepository, tx TxRunner) *VolunteerUseCase {
	return &VolunteerUseCase{repo: repo, tx: tx}
}

// List pages volunteers, newest first.
func (uc *VolunteerUseCase) List(ctx context.Context, f dto.VolunteerFilter, q dto.ListQuery) (*pagination.Result[*entity.Volunteer], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	filter := pagination.Filter{}.EqIf("status", f.Status).EqIf("role", f.Role)
	return pagination.Paginate[*entity.Volunteer](ctx, uc.repo, filter, opts)
}

// Get returns one volunteer.
func (uc *VolunteerUseCase) Get(ctx context.Context, id string) (*entity.Volunteer, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// GetByUserID returns the volunteer profile of a user.
func (uc *VolunteerUseCase) GetByUserID(ctx context.Context, userID string) (*entity.Volunteer, error) {
	v, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// Register files a PENDING application for userID. A user applies once.
func (uc *VolunteerUseCase) Register(ctx context.Context, userID string, in dto.RegisterVolunteerRequest) (*entity.Volunteer, error) {
	now := time.Now().UTC()
	v := &entity.Volunteer{
		ID:             objectid.New(),
		UserID:         userID,
		Name:           in.Name,
		Contact:        in.Contact,
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Area:           in.Area,
		Role:           in.Role,
		Status:         entity.VolunteerPending,
		AssignedCases:  []string{},
		Availability:   in.Availability,
		Address:        in.Address,
		Experience:     in.Experience,
		Certifications: in.Certifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateStatus changes the application state. Approval notifies the applicant
// in the same transaction.
func (uc *VolunteerUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Volunteer, error) {
	var out *entity.Volunteer
	err := uc.tx.Run(ctx, func(tx TxRepos) error {
		v, err := tx.Volunteers.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.Status == entity.VolunteerApproved {
			if err := notifyVolunteerApproval(ctx, tx.Notifications, v); err != nil {
				return err
			}
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StatusMessage is the response message for a status change, e.g. "Volunteer approved".
func StatusMessage(kind, status string) string {
	return kind + " " + strings.ToLower(status)
}
