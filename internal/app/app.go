// Package app wires the configuration, platform adapters, media fetcher,
// quota store and Telegram front end into a runnable service.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhaminn/social-scraper-bot/internal/bot"
	"github.com/mhaminn/social-scraper-bot/internal/fetch"
	"github.com/mhaminn/social-scraper-bot/internal/platform/config"
	"github.com/mhaminn/social-scraper-bot/internal/platform/observability"
	"github.com/mhaminn/social-scraper-bot/internal/platform/worker"
	"github.com/mhaminn/social-scraper-bot/internal/scrape"
	"github.com/mhaminn/social-scraper-bot/internal/usage"
)

// App holds the application dependencies.
type App struct {
	cfg    *config.Config
	logger *zerolog.Logger
}

func New(cfg *config.Config, logger *zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// StartHealthServer starts the health check and metrics server. Blocks until
// ctx is cancelled.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunBot builds the full pipeline and runs the Telegram long-poll loop.
func (a *App) RunBot(ctx context.Context) error {
	registry := scrape.NewRegistry(scrape.Config{
		InstagramAPIURL: a.cfg.InstagramAPIURL,
		FacebookAPIURL:  a.cfg.FacebookAPIURL,
		TikTokAPIURL:    a.cfg.TikTokAPIURL,
		YouTubeAPIURL:   a.cfg.YouTubeAPIURL,
		Timeout:         a.cfg.RequestTimeout,
		RPS:             a.cfg.APIFetchRPS,
	}, a.logger)

	fetcher := fetch.New(a.cfg.MediaFetchTimeout, a.cfg.MaxFileSizeBytes(), a.logger)
	quotas := usage.NewMemoryStore(a.cfg.DailyLimit)
	stats := usage.NewStats(time.Now())

	b, err := bot.New(a.cfg, registry, fetcher, quotas, stats, a.logger)
	if err != nil {
		return err
	}

	go func() {
		tasks := []worker.Task{{
			Name:     "prune-quota-records",
			Interval: quotaPruneInterval,
			Run: func(context.Context) {
				if pruned := quotas.Prune(time.Now()); pruned > 0 {
					a.logger.Info().Int("records", pruned).Msg("pruned stale quota records")
				}
			},
		}}

		if err := worker.TickerLoop(ctx, "maintenance", tasks, a.logger); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error().Err(err).Msg("maintenance worker error")
		}
	}()

	return b.Run(ctx)
}

const quotaPruneInterval = time.Hour
