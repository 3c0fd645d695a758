//go:build unit

package config_test

import (
	"testing"
	"time"

	"coupon-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "coupon")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "coupons")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.Coupon.PageSize)
		assert.Equal(t, 24*time.Hour, cfg.JWT.Duration)
		assert.Equal(t, "@every 1m", cfg.Metrics.StatsSpec)
		assert.False(t, cfg.Admin.Enabled())
	})

	t.Run("page size override", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("COUPON_PAGE_SIZE", "25")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Coupon.PageSize)
	})

	t.Run("non-positive page size is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("COUPON_PAGE_SIZE", "0")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("admin seeding needs both fields", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_PASSWORD", "password123")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Admin.Enabled())
	})
}

func TestBuildDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "coupons",
		SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/coupons?sslmode=disable&timezone=UTC", db.BuildDSN())
}
