package notifier

import (
	"context"

	"schedule-scraper/lib/timezone"
	"schedule-scraper/services/schedule/db"
)

const defaultDailyLimit = 3

// allowCommand checks and consumes one rate-limit slot for a /schedule
// request. Private chats are never limited; in group chats each user
// gets dailyLimit requests per calendar day.
func (s *Service) allowCommand(ctx context.Context, chatID, userID int64, private bool) (bool, error) {
	if private {
		return true, nil
	}

	limit := int64(s.config.DailyLimit)
	if limit <= 0 {
		limit = defaultDailyLimit
	}

	now := timezone.Now()
	arg := db.GetUserDailyCountParams{
		ChatID:  chatID,
		UserID:  userID,
		DateYmd: now.Format("2006-01-02"),
	}
	count, err := s.qry.GetUserDailyCount(ctx, arg)
	if err != nil {
		return false, err
	}
	if count >= limit {
		return false, nil
	}

	_, err = s.qry.IncrementUserDailyCount(ctx, db.IncrementUserDailyCountParams{
		ChatID:    arg.ChatID,
		UserID:    arg.UserID,
		DateYmd:   arg.DateYmd,
		UpdatedAt: now.Unix(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
