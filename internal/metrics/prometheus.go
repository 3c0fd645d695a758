package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coupon_admin_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	CouponMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coupon_admin_coupon_mutations_total",
		Help: "Coupon create/edit/delete attempts by outcome",
	}, []string{"op", "result"})

	CouponsByState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "coupon_admin_coupons",
		Help: "Number of stored coupons by state",
	}, []string{"state"})

	StatsRefreshErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coupon_admin_stats_refresh_errors_total",
		Help: "Total failures while refreshing coupon state gauges",
	})
)

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	label := strings.TrimSpace(route)
	if label == "" {
		label = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, label, statusClass(status)).Observe(duration.Seconds())
}

func RecordCouponMutation(op string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	CouponMutations.WithLabelValues(op, result).Inc()
}

func SetCouponCounts(total, enabled, expired int64) {
	CouponsByState.WithLabelValues("total").Set(nonNegative(total))
	CouponsByState.WithLabelValues("enabled").Set(nonNegative(enabled))
	CouponsByState.WithLabelValues("expired").Set(nonNegative(expired))
}

func IncStatsRefreshError() {
	StatsRefreshErrors.Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

func nonNegative(v int64) float64 {
	if v < 0 {
		return 0
	}
	return float64(v)
}
