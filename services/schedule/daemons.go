package schedule

import (
	"context"
	"log/slog"
	"time"

	"schedule-scraper/lib/timezone"
	"schedule-scraper/services/schedule/db"

	"github.com/robfig/cron/v3"
)

const checkInterval = time.Minute * 20

// OnChange receives a report for every stored change. It runs on the
// daemon goroutine, so it should hand work off quickly.
type OnChange func(ctx context.Context, report ChangeReport)

// StartDaemons launches the periodic page checks: one every twenty
// minutes, plus fixed runs at 06:30 and 18:30 local time. When the
// store holds no versions yet, an initial check runs immediately.
//
// All checks for the group execute on the one checkDaemon goroutine:
// the cron entries only signal it through a buffered channel, so a
// fixed-time fire coinciding with a ticker tick can never run two
// checks at once. A signal arriving while a check is in flight
// coalesces into a single follow-up run.
func (s Service) StartDaemons(ctx context.Context, onChange OnChange) error {
	trigger := make(chan struct{}, 1)
	requestCheck := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	cronner := cron.New(cron.WithLocation(timezone.Location))
	for _, spec := range []string{"30 6 * * *", "30 18 * * *"} {
		_, err := cronner.AddFunc(spec, requestCheck)
		if err != nil {
			return err
		}
	}
	cronner.Start()

	go func() {
		<-ctx.Done()
		cronner.Stop()
	}()
	go s.checkDaemon(ctx, trigger, onChange)

	return nil
}

func (s Service) checkDaemon(ctx context.Context, trigger <-chan struct{}, onChange OnChange) {
	versions, err := s.qry.ListScheduleVersions(ctx, db.ListScheduleVersionsParams{
		GroupCode: s.config.GroupCode,
		Limit:     1,
	})
	if err != nil {
		slog.WarnContext(ctx, "list versions on startup", "err", err)
	}
	if len(versions) == 0 {
		slog.InfoContext(ctx, "store is empty, running initial check", "group", s.config.GroupCode)
		s.runCheck(ctx, onChange)
	}

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCheck(ctx, onChange)
		case <-trigger:
			s.runCheck(ctx, onChange)
		}
	}
}

func (s Service) runCheck(ctx context.Context, onChange OnChange) {
	report, err := s.CheckAndStore(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "check schedule", "group", s.config.GroupCode, "err", err)
		return
	}
	if report == nil {
		slog.DebugContext(ctx, "schedule unchanged", "group", s.config.GroupCode)
		return
	}

	slog.InfoContext(
		ctx, "schedule changed",
		"group", s.config.GroupCode,
		"week", report.Week,
		"records", report.Count,
	)
	if onChange != nil {
		onChange(ctx, *report)
	}
}
