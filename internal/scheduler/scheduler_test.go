//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"coupon-admin/internal/metrics"
	"coupon-admin/internal/scheduler"
	"coupon-admin/internal/usecase/queries"
	queriesmock "coupon-admin/tests/mock/queries"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type panickyJob struct{ calls int }

func (p *panickyJob) RefreshCouponStats() {
	p.calls++
	panic("boom")
}

func TestNewScheduler(t *testing.T) {
	t.Run("registers stats job", func(t *testing.T) {
		c, err := scheduler.NewScheduler(scheduler.Deps{StatsJob: &panickyJob{}, StatsSpec: "@every 1m"}, nil)
		require.NoError(t, err)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("six field spec", func(t *testing.T) {
		c, err := scheduler.NewScheduler(scheduler.Deps{StatsJob: &panickyJob{}, StatsSpec: "0 */5 * * * *"}, nil)
		require.NoError(t, err)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, err := scheduler.NewScheduler(scheduler.Deps{StatsJob: &panickyJob{}, StatsSpec: "not a spec"}, nil)
		assert.Error(t, err)
	})

	t.Run("no jobs", func(t *testing.T) {
		c, err := scheduler.NewScheduler(scheduler.Deps{}, nil)
		require.NoError(t, err)
		assert.Empty(t, c.Entries())
	})

	t.Run("job panic is recovered", func(t *testing.T) {
		job := &panickyJob{}
		c, err := scheduler.NewScheduler(scheduler.Deps{StatsJob: job, StatsSpec: "@every 1h"}, nil)
		require.NoError(t, err)

		entries := c.Entries()
		require.Len(t, entries, 1)
		assert.NotPanics(t, func() { entries[0].WrappedJob.Run() })
		assert.Equal(t, 1, job.calls)
	})
}

func TestCouponStatsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockCouponQueries(ctrl)

	q.EXPECT().Stats(gomock.Any()).Return(&queries.CouponStats{Total: 9, Enabled: 6, Expired: 2}, nil)

	scheduler.NewCouponStatsJob(q, nil).RefreshCouponStats()

	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("total")))
	assert.Equal(t, 6.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("enabled")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("expired")))

	before := testutil.ToFloat64(metrics.StatsRefreshErrors)
	q.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (*queries.CouponStats, error) {
		return nil, errors.New("db down")
	})

	scheduler.NewCouponStatsJob(q, nil).RefreshCouponStats()

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StatsRefreshErrors))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("total")))
}
