package components

import (
	"context"
	"log/slog"

	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/scheduler"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.NewCouponStatsJob,
		NewCron,
	),
	fx.Invoke(startCron),
)

func NewCron(job *scheduler.CouponStatsJob, cfg config.Config, logger *slog.Logger) (*cron.Cron, error) {
	return scheduler.NewScheduler(scheduler.Deps{
		StatsJob:  job,
		StatsSpec: cfg.Metrics.StatsSpec,
	}, logger)
}

func startCron(lc fx.Lifecycle, c *cron.Cron, job *scheduler.CouponStatsJob, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			// gauges are populated before the first tick
			go job.RefreshCouponStats()
			logger.Info("scheduler started", "entries", len(c.Entries()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}
