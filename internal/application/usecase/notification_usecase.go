package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
	"github.com/jhoicas/straydog-api/pkg/objectid"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// NotificationUseCase in-app notifications of the caller.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List pages the caller's notifications, newest first. read filters by state when set.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, read *bool, q dto.ListQuery) (*pagination.Result[*entity.Notification], error) {
	opts, err := pagination.NewOptions(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	filter := pagination.Where(pagination.Eq("userId", userID))
	if read != nil {
		filter = append(filter, pagination.Eq("read", *read))
	}
	return pagination.Paginate[*entity.Notification](ctx, uc.repo, filter, opts)
}

// UnreadCount counts the caller's unread notifications.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.repo.Count(ctx, pagination.Where(pagination.Eq("userId", userID), pagination.Eq("read", false)))
}

// MarkRead marks one of the caller's notifications as read.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) (*entity.Notification, error) {
	n, err := uc.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the caller.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return uc.repo.MarkAllRead(ctx, userID)
}

func notify(ctx context.Context, repo repository.NotificationRepository, n entity.Notification) error {
	now := time.Now().UTC()
	n.ID = objectid.New()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Type == "" {
		n.Type = entity.NotificationInfo
	}
	return repo.Create(ctx, &n)
}

func notifyCaseAssignment(ctx context.Context, repo repository.NotificationRepository, report *entity.DogReport, v *entity.Volunteer) error {
	name := report.DogName
	if name == "" {
		name = "Unnamed dog"
	}
	return notify(ctx, repo, entity.Notification{
		UserID:            v.UserID,
		Title:             "New Case Assigned",
		Message:           fmt.Sprintf("You have been assigned to case: %s", name),
		Type:              entity.NotificationCaseAssigned,
		RelatedEntityID:   report.ID,
		RelatedEntityType: entity.RelatedDogReport,
	})
}

func notifyVolunteerApproval(ctx context.Context, repo repository.NotificationRepository, v *entity.Volunteer) error {
	return notify(ctx, repo, entity.Notification{
		UserID:            v.UserID,
		Title:             "Volunteer Application Approved",
		Message:           "Congratulations! Your volunteer application has been approved.",
		Type:              entity.NotificationVolunteerApproved,
		RelatedEntityID:   v.ID,
		RelatedEntityType: entity.RelatedVolunteer,
	})
}

func notifyTaskAssignment(ctx context.Context, repo repository.NotificationRepository, t *entity.VolunteerTask, v *entity.Volunteer) error {
	return notify(ctx, repo, entity.Notification{
		UserID:            v.UserID,
		Title:             "New Task Assigned",
		Message:           fmt.Sprintf("You have a new %s priority task: %s", strings.ToLower(t.Priority), t.Title),
		Type:              entity.NotificationTaskAssigned,
		RelatedEntityID:   t.ID,
		RelatedEntityType: entity.RelatedTask,
	})
}

func notifyCaseUpdate(ctx context.Context, repo repository.NotificationRepository, report *entity.DogReport, msg string) error {
	if report.ReportedBy == nil {
		return nil
	}
	return notify(ctx, repo, entity.Notification{
		UserID:            *report.ReportedBy,
		Title:             "Case Update",
		Message:           msg,
		Type:              entity.NotificationCaseUpdate,
		RelatedEntityID:   report.ID,
		RelatedEntityType: entity.RelatedDogReport,
	})
}

func notifyDonationReceived(ctx context.Context, repo repository.NotificationRepository, d *entity.Donation) error {
	if d.DonorID == nil {
		return nil
	}
	return notify(ctx, repo, entity.Notification{
		UserID:            *d.DonorID,
		Title:             "Donation Received",
		Message:           fmt.Sprintf("Thank you for your donation of %s!", d.Amount.StringFixed(2)),
		Type:              entity.NotificationDonationReceived,
		RelatedEntityID:   d.ID,
		RelatedEntityType: entity.RelatedDonation,
	})
}
