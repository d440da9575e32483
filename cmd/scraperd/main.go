package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"schedule-scraper/lib/configutil"
	"schedule-scraper/lib/osutil"
	"schedule-scraper/lib/telemetry"
	"schedule-scraper/services/notifier"
	"schedule-scraper/services/schedule"
	scheduledb "schedule-scraper/services/schedule/db"
)

type Config struct {
	Database scheduledb.Config `json:"database"`
	Schedule schedule.Config   `json:"schedule"`
	Telegram notifier.Config   `json:"telegram"`
	Port     int               `json:"port"`
}

func fatal(message string, err error) {
	slog.Error(message, "err", err)
	os.Exit(1)
}

func main() {
	ctx := osutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		fatal("failed to read config", err)
	}

	t, err := telemetry.SetupFromEnv(ctx, "scraperd")
	if os.IsNotExist(err) {
		slog.Warn("no telemetry.json5 found, telemetry disabled")
	} else if err != nil {
		fatal("failed to setup telemetry", err)
	} else {
		defer t.Shutdown(context.Background())
	}

	database, err := config.Database.OpenDB()
	if err != nil {
		fatal("failed to open database", err)
	}
	defer database.Close()

	sched := schedule.NewService(database, config.Schedule)

	var onChange schedule.OnChange
	if config.Telegram.Token != "" {
		bot, err := notifier.NewService(database, sched, config.Telegram)
		if err != nil {
			fatal("failed to init telegram bot", err)
		}
		onChange = bot.NotifyChange
		go bot.Run(ctx)
	} else {
		slog.Warn("no telegram token configured, bot disabled")
	}

	err = sched.StartDaemons(ctx, onChange)
	if err != nil {
		fatal("failed to start daemons", err)
	}

	mux := http.NewServeMux()
	sched.RegisterRoutes(mux)

	port := config.Port
	if port == 0 {
		port = 8080
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		slog.Info("http server listening", "port", port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			fatal("http server", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	server.Shutdown(shutdownCtx)
}
