package notifier

import (
	"context"
	"testing"

	"schedule-scraper/lib/testutil"
	"schedule-scraper/lib/timezone"
	"schedule-scraper/services/schedule/db"

	"github.com/stretchr/testify/require"
)

func TestAllowCommand(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/notifier:ratelimit",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := &Service{
		qry:    db.New(setup.DB),
		config: Config{DailyLimit: 3},
	}
	ctx := context.Background()

	const groupChat, user, otherUser = -100200, 7, 8

	{
		// group chat: three requests pass, the fourth is denied
		for i := 0; i < 3; i++ {
			ok, err := service.allowCommand(ctx, groupChat, user, false)
			require.NoError(t, err)
			require.True(t, ok, "request %d should pass", i+1)
		}
		ok, err := service.allowCommand(ctx, groupChat, user, false)
		require.NoError(t, err)
		require.False(t, ok)
	}
	{
		// the budget is per user, not per chat
		ok, err := service.allowCommand(ctx, groupChat, otherUser, false)
		require.NoError(t, err)
		require.True(t, ok)
	}
	{
		// private chats are never limited and never consume a slot
		for i := 0; i < 10; i++ {
			ok, err := service.allowCommand(ctx, user, user, true)
			require.NoError(t, err)
			require.True(t, ok)
		}
		count, err := service.qry.GetUserDailyCount(ctx, db.GetUserDailyCountParams{
			ChatID:  user,
			UserID:  user,
			DateYmd: timezone.Now().Format("2006-01-02"),
		})
		require.NoError(t, err)
		require.EqualValues(t, 0, count)
	}
}

func TestAllowCommandDefaultLimit(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/notifier:ratelimit-default",
		DbSchema: db.Schema,
	})
	defer cleanup()

	// zero config falls back to the built-in limit
	service := &Service{qry: db.New(setup.DB)}
	ctx := context.Background()

	for i := 0; i < defaultDailyLimit; i++ {
		ok, err := service.allowCommand(ctx, -1, 1, false)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := service.allowCommand(ctx, -1, 1, false)
	require.NoError(t, err)
	require.False(t, ok)
}
