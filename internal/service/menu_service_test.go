package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "theboar/internal/errors"
	"theboar/internal/model"
)

func TestMenuService_EnsureSeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("CreateBatch", ctx, mock.MatchedBy(func(items []model.MenuItem) bool {
			return len(items) == 15 && items[0].ID == 1 && items[14].ID == 15
		})).Return(nil)

		n, err := NewMenuService(repo).EnsureSeeded(ctx)
		require.NoError(t, err)
		assert.Equal(t, 15, n)
		repo.AssertExpectations(t)
	})

	t.Run("already seeded", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("Count", ctx).Return(int64(15), nil)

		n, err := NewMenuService(repo).EnsureSeeded(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestMenuService_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMenuRepository)
	boom := errors.New("connection reset")
	repo.On("FindByID", ctx, 8).Return(&model.MenuItem{ID: 8}, nil)
	repo.On("FindByID", ctx, 99).Return(nil, apperrors.ErrNotFound)
	repo.On("FindByID", ctx, 7).Return(nil, boom)
	svc := NewMenuService(repo)

	item, err := svc.FindByID(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, item.ID)

	_, err = svc.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrMenuItemNotFound)

	_, err = svc.FindByID(ctx, 7)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrMenuItemNotFound)
}
