package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kasuboski/tvsort/config"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/kasuboski/tvsort/pkg/storage"
	"github.com/kasuboski/tvsort/pkg/storage/mocks"
	"github.com/kasuboski/tvsort/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatusReason(t *testing.T) {
	assert.Equal(t, "verification failed", statusReason(1))
	assert.Equal(t, "unpack failed", statusReason(2))
	assert.Equal(t, "verification and unpack failed", statusReason(3))
	assert.Equal(t, "post-processing status 7", statusReason(7))
}

func TestSortTier(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{TV: config.TV{DefaultQuality: "low"}}
	job := "Show.S01E01.WEB"

	t.Run("flag wins", func(t *testing.T) {
		sortQuality = "HIGH"
		t.Cleanup(func() { sortQuality = "" })

		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		tier, err := sortTier(ctx, cfg, store, job)
		require.NoError(t, err)
		assert.Equal(t, quality.High, tier)
	})

	t.Run("invalid flag", func(t *testing.T) {
		sortQuality = "ultra"
		t.Cleanup(func() { sortQuality = "" })

		ctrl := gomock.NewController(t)
		_, err := sortTier(ctx, cfg, mocks.NewMockStorage(ctrl), job)
		assert.ErrorIs(t, err, quality.ErrUnknownTier)
	})

	t.Run("recorded in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().GetInProgress(ctx, job).Return(&model.InProgress{Title: job, Quality: "medium"}, nil)

		tier, err := sortTier(ctx, cfg, store, job)
		require.NoError(t, err)
		assert.Equal(t, quality.Medium, tier)
	})

	t.Run("falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().GetInProgress(ctx, job).Return(nil, storage.ErrNotFound)

		tier, err := sortTier(ctx, cfg, store, job)
		require.NoError(t, err)
		assert.Equal(t, quality.Low, tier)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		boom := errors.New("disk I/O error")
		store.EXPECT().GetInProgress(ctx, job).Return(nil, boom)

		_, err := sortTier(ctx, cfg, store, job)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Episode", "Size"},
		[][]string{{"s01e01", "1.2 GiB"}, {"s01e02"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "EPISODE")
	assert.Contains(t, lines[3], "s01e01")
	assert.Contains(t, lines[3], "1.2 GiB")
	assert.Contains(t, lines[4], "s01e02")

	assert.Empty(t, renderTable(nil, nil, nil))
}
