//go:build unit

package metrics_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"coupon-admin/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCouponMutation(t *testing.T) {
	before := testutil.ToFloat64(metrics.CouponMutations.WithLabelValues("create", metrics.ResultSuccess))
	beforeErr := testutil.ToFloat64(metrics.CouponMutations.WithLabelValues("create", metrics.ResultError))

	metrics.RecordCouponMutation("create", nil)
	metrics.RecordCouponMutation("create", errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CouponMutations.WithLabelValues("create", metrics.ResultSuccess)))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(metrics.CouponMutations.WithLabelValues("create", metrics.ResultError)))
}

func TestSetCouponCounts(t *testing.T) {
	metrics.SetCouponCounts(12, 7, -1)

	assert.Equal(t, 12.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("total")))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("enabled")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CouponsByState.WithLabelValues("expired")))
}

func TestObserveHTTPRequest(t *testing.T) {
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/admin/coupons", http.StatusOK, 15*time.Millisecond)
	metrics.ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HTTPRequestDuration), 2)
}
