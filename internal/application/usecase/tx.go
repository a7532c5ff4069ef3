package usecase

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

// TxRepos are repositories bound to one transaction.
type TxRepos struct {
	DogReports    repository.DogReportRepository
	Volunteers    repository.VolunteerRepository
	Notifications repository.NotificationRepository
}

// TxRunner runs fn inside a transaction, committing when it returns nil.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}
