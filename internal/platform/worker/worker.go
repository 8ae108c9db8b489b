// Package worker runs periodic background tasks on simple tickers.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Task is one periodic job.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

// TickerLoop runs the tasks at their intervals until ctx is cancelled.
// Returns the wrapped context error on shutdown.
func TickerLoop(ctx context.Context, name string, tasks []Task, logger *zerolog.Logger) error {
	logger.Info().Str("worker", name).Int("tasks", len(tasks)).Msg("starting ticker loop")

	tickers := make([]*time.Ticker, len(tasks))

	for i, task := range tasks {
		if task.Interval <= 0 || task.Run == nil {
			continue
		}

		tickers[i] = time.NewTicker(task.Interval)
		defer tickers[i].Stop()
	}

	cases := make([]<-chan time.Time, len(tasks))
	for i, ticker := range tickers {
		if ticker != nil {
			cases[i] = ticker.C
		}
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("worker", name).Msg("ticker loop stopped")

			return fmt.Errorf("ticker loop %s: %w", name, ctx.Err())
		default:
		}

		for i, task := range tasks {
			if cases[i] == nil {
				continue
			}

			select {
			case <-cases[i]:
				logger.Debug().Str("task", task.Name).Msg("running task")
				task.Run(ctx)
			default:
			}
		}

		if err := wait(ctx, pollInterval); err != nil {
			return fmt.Errorf("ticker loop %s: %w", name, err)
		}
	}
}

const pollInterval = 100 * time.Millisecond

// wait sleeps for d or until ctx is cancelled, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
