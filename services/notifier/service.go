// Package notifier runs the Telegram bot: on-demand schedule replies
// and push messages when the scraped page content changes.
package notifier

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"schedule-scraper/lib/timezone"
	"schedule-scraper/services/schedule"
	"schedule-scraper/services/schedule/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/notifier")

type Config struct {
	Token      string  `json:"token"`
	AdminIds   []int64 `json:"admin_ids"`
	WebAppUrl  string  `json:"web_app_url"`
	DailyLimit int     `json:"daily_limit"`
}

type Service struct {
	bot       *tgbotapi.BotAPI
	qry       *db.Queries
	schedule  schedule.Service
	directory TeacherDirectory
	config    Config
}

func NewService(database *sql.DB, sched schedule.Service, config Config) (*Service, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Service{
		bot:       bot,
		qry:       db.New(database),
		schedule:  sched,
		directory: DefaultTeacherDirectory(),
		config:    config,
	}, nil
}

// Run consumes bot updates until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	slog.InfoContext(ctx, "telegram bot started", "username", s.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := s.bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		s.bot.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || update.Message.From == nil || !update.Message.IsCommand() {
			continue
		}
		s.handleCommand(ctx, update.Message)
	}
}

func (s *Service) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	ctx, span := tracer.Start(ctx, "handleCommand")
	defer span.End()

	var err error
	switch msg.Command() {
	case "start":
		err = s.replyStart(msg)
	case "schedule":
		err = s.replySchedule(ctx, msg)
	case "status":
		err = s.replyStatus(ctx, msg)
	case "help":
		err = s.reply(msg.Chat.ID, helpText)
	default:
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to handle bot command",
			"command", msg.Command(), "chat", msg.Chat.ID, "err", err)
	}
}

const helpText = `Команды:
/schedule — расписание на сегодня (после 18:00 — на завтра)
/status — когда расписание обновлялось
/help — эта справка`

func (s *Service) replyStart(msg *tgbotapi.Message) error {
	out := tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("Привет! Я слежу за расписанием группы %s.\n\n%s",
			s.schedule.GroupCode(), helpText))
	if s.config.WebAppUrl != "" && msg.Chat.IsPrivate() {
		out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.InlineKeyboardButton{
				Text:   "📅 Открыть расписание",
				WebApp: &tgbotapi.WebAppInfo{URL: s.config.WebAppUrl},
			}),
		)
	}
	_, err := s.bot.Send(out)
	return err
}

func (s *Service) replySchedule(ctx context.Context, msg *tgbotapi.Message) error {
	allowed, err := s.allowCommand(ctx, msg.Chat.ID, msg.From.ID, msg.Chat.IsPrivate())
	if err != nil {
		return err
	}
	if !allowed {
		return s.reply(msg.Chat.ID,
			"Лимит запросов на сегодня исчерпан. Напишите мне в личные сообщения 🙂")
	}

	lessons, _, found, err := s.schedule.LatestLessons(ctx)
	if err != nil {
		return err
	}
	if !found {
		return s.reply(msg.Chat.ID, "Расписание ещё не загружено, загляните позже.")
	}

	days := groupByDay(lessons)
	date, label, ok := pickDay(days, timezone.Now())
	if !ok {
		return s.reply(msg.Chat.ID, "На ближайшие дни занятий не нашлось 🎉")
	}
	return s.reply(msg.Chat.ID, formatDay(date, label, days[date], s.directory))
}

func (s *Service) replyStatus(ctx context.Context, msg *tgbotapi.Message) error {
	_, version, found, err := s.schedule.LatestLessons(ctx)
	if err != nil {
		return err
	}
	if !found {
		return s.reply(msg.Chat.ID, "Данных пока нет: ни одной проверки не завершилось.")
	}
	checked := time.Unix(version.CreatedAt, 0).In(timezone.Location)
	return s.reply(msg.Chat.ID, fmt.Sprintf(
		"Группа %s\nНеделя: %s\nПоследнее обновление: %s",
		version.GroupCode, version.WeekStart, checked.Format("02.01.2006 15:04")))
}

// NotifyChange pushes a change report to every configured admin chat.
// Wired as the OnChange callback of the schedule daemons.
func (s *Service) NotifyChange(ctx context.Context, report schedule.ChangeReport) {
	text := fmt.Sprintf("🗓 Обновилось расписание %s (неделя %s), записей: %d",
		s.schedule.GroupCode(), report.Week, report.Count)
	for _, id := range s.config.AdminIds {
		if err := s.reply(id, text); err != nil {
			slog.ErrorContext(ctx, "failed to notify admin", "chat", id, "err", err)
		}
	}
}

func (s *Service) reply(chatID int64, text string) error {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	_, err := s.bot.Send(out)
	return err
}
