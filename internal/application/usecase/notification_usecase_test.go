package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

func TestNotifications_ListCountAndMarkRead(t *testing.T) {
	repo := newMemNotifications()
	repo.add(&entity.Notification{ID: "n1", UserID: "u1"})
	repo.add(&entity.Notification{ID: "n2", UserID: "u1"})
	repo.add(&entity.Notification{ID: "n3", UserID: "u2"})
	uc := usecase.NewNotificationUseCase(repo)
	ctx := context.Background()

	res, err := uc.List(ctx, "u1", nil, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Pagination.Total)

	n, err := uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = uc.MarkRead(ctx, "n3", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "other users' notifications are invisible")

	out, err := uc.MarkRead(ctx, "n1", "u1")
	require.NoError(t, err)
	assert.True(t, out.Read)

	unread := false
	res, err = uc.List(ctx, "u1", &unread, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "n2", res.Results[0].ID)

	marked, err := uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, marked)
}
