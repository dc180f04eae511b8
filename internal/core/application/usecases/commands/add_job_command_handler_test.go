package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobassist/internal/adapters/out/memory/jobcatalog"
	"jobassist/internal/core/application/usecases/commands"
	"jobassist/internal/core/domain/model/kernel"
)

func TestAddJobCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("registers offer in catalog", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		handler := commands.NewAddJobCommandHandler(catalog)

		jobID := kernel.NewUUID()
		cmd, err := commands.NewAddJobCommand(jobID, "Barista", "Beanery", "Downtown",
			12.5, 40, mondaySchedule(t), false, time.Now())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		offer, err := catalog.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, "Barista", offer.Title())
		assert.InDelta(t, 500, offer.WeeklyPay(), 1e-9)
	})

	t.Run("rejects unconstructed command", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		handler := commands.NewAddJobCommandHandler(catalog)

		err := handler.Handle(ctx, commands.AddJobCommand{})
		assert.Error(t, err)
		assert.Equal(t, commands.ErrAddJobCommandIsNotConstructed, err)
	})

	t.Run("rejects invalid offer fields", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		handler := commands.NewAddJobCommandHandler(catalog)

		cmd, err := commands.NewAddJobCommand(kernel.NewUUID(), "", "", "",
			-1, 0, kernel.Schedule{}, false, time.Time{})
		require.NoError(t, err)

		assert.Error(t, handler.Handle(ctx, cmd))

		all, err := catalog.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all, "nothing reaches the catalog when the offer is invalid")
	})

	t.Run("re-registering an ID updates the offer", func(t *testing.T) {
		catalog := jobcatalog.NewCatalog()
		handler := commands.NewAddJobCommandHandler(catalog)
		jobID := kernel.NewUUID()

		first, err := commands.NewAddJobCommand(jobID, "Barista", "", "",
			12.5, 40, kernel.Schedule{}, false, time.Now())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, first))

		second, err := commands.NewAddJobCommand(jobID, "Senior Barista", "", "",
			15, 40, kernel.Schedule{}, false, time.Now())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, second))

		all, err := catalog.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Senior Barista", all[0].Title())
	})
}
