package scheduler

import (
	"context"
	"log/slog"
	"time"

	"coupon-admin/internal/metrics"
	"coupon-admin/internal/usecase/queries"
)

const statsRefreshTimeout = 10 * time.Second

// CouponStatsJob copies coupon counts into the state gauges.
type CouponStatsJob struct {
	queries queries.CouponQueries
	logger  *slog.Logger
}

func NewCouponStatsJob(q queries.CouponQueries, logger *slog.Logger) *CouponStatsJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &CouponStatsJob{queries: q, logger: logger}
}

func (j *CouponStatsJob) RefreshCouponStats() {
	ctx, cancel := context.WithTimeout(context.Background(), statsRefreshTimeout)
	defer cancel()

	stats, err := j.queries.Stats(ctx)
	if err != nil {
		metrics.IncStatsRefreshError()
		j.logger.Warn("coupon stats refresh failed", "error", err.Error())
		return
	}

	metrics.SetCouponCounts(stats.Total, stats.Enabled, stats.Expired)
}
