package jobcatalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobassist/internal/adapters/out/memory/jobcatalog"
	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/errs"
)

func TestCatalog_Add(t *testing.T) {
	t.Run("stores valid offer", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		offer := newOffer(t, "Barista", time.Time{})

		err := catalog.Add(context.Background(), offer)
		require.NoError(t, err)

		got, err := catalog.Get(context.Background(), offer.ID())
		require.NoError(t, err)
		assert.Same(t, offer, got)
	})

	t.Run("rejects unconstructed offer", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()

		err := catalog.Add(context.Background(), &job.Job{})
		assert.Error(t, err)

		err = catalog.Add(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("re-adding same ID replaces in place", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		first := newOffer(t, "First", time.Time{})
		second := newOffer(t, "Second", time.Time{})
		require.NoError(t, catalog.Add(context.Background(), first))
		require.NoError(t, catalog.Add(context.Background(), second))

		refreshed, err := job.NewJob(first.ID(), "First Refreshed", "", "",
			18, 20, kernel.Schedule{}, false, time.Now())
		require.NoError(t, err)
		require.NoError(t, catalog.Add(context.Background(), refreshed))

		all, err := catalog.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "First Refreshed", all[0].Title(), "refreshed offer keeps its position")
		assert.Equal(t, "Second", all[1].Title())
	})
}

func TestCatalog_Get(t *testing.T) {
	t.Run("unknown ID", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()

		_, err := catalog.Get(context.Background(), kernel.NewUUID())
		assert.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})

	t.Run("invalid ID", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()

		_, err := catalog.Get(context.Background(), kernel.UUID{})
		assert.Error(t, err)
	})
}

func TestCatalog_GetAll(t *testing.T) {
	t.Run("insertion order preserved", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		titles := []string{"First", "Second", "Third"}
		for _, title := range titles {
			require.NoError(t, catalog.Add(context.Background(), newOffer(t, title, time.Time{})))
		}

		all, err := catalog.GetAll(context.Background())
		require.NoError(t, err)

		require.Len(t, all, 3)
		for i, title := range titles {
			assert.Equal(t, title, all[i].Title())
		}
	})

	t.Run("returns independent snapshot", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		require.NoError(t, catalog.Add(context.Background(), newOffer(t, "Only", time.Time{})))

		snapshot, err := catalog.GetAll(context.Background())
		require.NoError(t, err)
		snapshot[0] = nil

		fresh, err := catalog.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, fresh, 1)
		assert.NotNil(t, fresh[0])
	})

	t.Run("empty catalog", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()

		all, err := catalog.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestCatalog_RemoveOlderThan(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("evicts stale offers only", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		stale := newOffer(t, "Stale", now.Add(-96*time.Hour))
		fresh := newOffer(t, "Fresh", now.Add(-time.Hour))
		undated := newOffer(t, "Undated", time.Time{})
		for _, offer := range []*job.Job{stale, fresh, undated} {
			require.NoError(t, catalog.Add(context.Background(), offer))
		}

		removed, err := catalog.RemoveOlderThan(context.Background(), now.Add(-72*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		all, err := catalog.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Fresh", all[0].Title())
		assert.Equal(t, "Undated", all[1].Title(), "offers without a posting time are kept")
	})

	t.Run("nothing to evict", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		require.NoError(t, catalog.Add(context.Background(), newOffer(t, "Fresh", now)))

		removed, err := catalog.RemoveOlderThan(context.Background(), now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	catalog := jobcatalog.NewCatalog()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = catalog.Add(ctx, newOffer(t, "Concurrent", time.Time{}))
		}()
		go func() {
			defer wg.Done()
			_, _ = catalog.GetAll(ctx)
		}()
	}
	wg.Wait()

	all, err := catalog.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func newOffer(t *testing.T, title string, postedAt time.Time) *job.Job {
	t.Helper()
	offer, err := job.NewJob(kernel.NewUUID(), title, "", "", 15, 20, kernel.Schedule{}, false, postedAt)
	require.NoError(t, err)
	return offer
}
