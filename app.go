package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-co-op/gocron/v2"

	"github.com/samgozman/coin-thread/archivist"
	"github.com/samgozman/coin-thread/jobs"
	"github.com/samgozman/coin-thread/pkg/rotator"
	"github.com/samgozman/coin-thread/publisher"
	"github.com/samgozman/coin-thread/scout"
	"github.com/samgozman/coin-thread/trader"
)

type App struct {
	cfg    *Config
	logger *slog.Logger
}

func (a *App) start() error {
	// Sentry hub for fatal errors
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
	})
	defer hub.Flush(2 * time.Second)

	rot, err := rotator.New(a.cfg.proxies)
	if err != nil {
		hub.CaptureException(err)
		return err
	}

	arch, err := archivist.NewArchivist(a.cfg.env.DatabasePath)
	if err != nil {
		hub.CaptureException(err)
		return err
	}

	pub, err := publisher.NewTelegramPublisher(
		a.cfg.env.TelegramBotToken,
		a.cfg.env.TelegramDefaultChannelID,
		a.cfg.routes,
	)
	if err != nil {
		hub.CaptureException(err)
		return err
	}

	client := scout.NewClient(rot, a.cfg.env.UserAgent, 20*time.Second)
	exchanges := []scout.Exchange{
		scout.NewBinance(client),
		scout.NewBybit(),
		scout.NewOKX(),
		scout.NewKuCoin(),
		scout.NewMEXC(),
		scout.NewUpbit(),
	}

	watchJob := jobs.NewWatchJob(arch.Entities.Announcements, pub, exchanges).
		Publish().
		WithTrader(trader.NewEngine(true))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.env.DemoMode {
		demoCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		watchJob.RunDemo(demoCtx)
		cancel()
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		hub.CaptureException(err)
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(a.cfg.pollInterval),
		gocron.NewTask(watchJob.Run()),
	)
	if err != nil {
		hub.AddBreadcrumb(&sentry.Breadcrumb{
			Category: "scheduler",
			Message:  "Error scheduling the watch job",
			Level:    sentry.LevelFatal,
		}, nil)
		hub.CaptureException(err)
		return err
	}

	s.Start()
	a.logger.Info("Started coin-thread successfully",
		"exchanges", len(exchanges),
		"poll_interval", a.cfg.pollInterval.String(),
		"proxies", rot.Len(),
	)

	<-ctx.Done()

	// Shutdown waits for the in-flight cycle to finish its dispatch phase.
	a.logger.Info("Shutting down coin-thread")
	return s.Shutdown()
}
