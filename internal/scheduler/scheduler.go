package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type StatsTask interface {
	RefreshCouponStats()
}

type Deps struct {
	StatsJob  StatsTask
	StatsSpec string
}

// NewScheduler registers every configured job. Specs carry a leading seconds
// field or use a descriptor such as "@every 1m".
func NewScheduler(deps Deps, logger *slog.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC))

	if deps.StatsJob != nil {
		if err := addFunc(c, deps.StatsSpec, "coupon.refresh_stats", logger, deps.StatsJob.RefreshCouponStats); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func addFunc(c *cron.Cron, spec string, name string, logger *slog.Logger, fn func()) error {
	if c == nil || fn == nil {
		return nil
	}

	if _, err := c.AddFunc(spec, func() {
		defer recoverJobPanic(name, logger)
		start := time.Now()
		fn()
		logger.Debug("scheduler job finished", "job", name, "cost", time.Since(start))
	}); err != nil {
		logger.Error("register scheduler job failed",
			"job", name,
			"spec", spec,
			"error", err,
		)
		return err
	}
	return nil
}

func recoverJobPanic(jobName string, logger *slog.Logger) {
	if recovered := recover(); recovered != nil {
		logger.Error("scheduler job panic recovered",
			"job", jobName,
			"panic", recovered,
		)
	}
}
