//go:build unit || e2e

package builder

import (
	"time"

	"coupon-admin/internal/domain/coupon"
	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/pgconv"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"
	"coupon-admin/pkg/couponapi"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponBuilder struct {
	Title      string
	IsEnabled  bool
	Percent    float64
	DueDate    int64
	Code       string
	UsageCount *int
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		Title:     "Summer Sale",
		IsEnabled: true,
		Percent:   10,
		DueDate:   1735689600, // 2025-01-01T00:00:00Z
		Code:      "SUMMER10",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) Attributes() coupon.Attributes {
	return coupon.Attributes{
		Title:     b.Title,
		IsEnabled: b.IsEnabled,
		Percent:   b.Percent,
		DueDate:   b.DueDate,
		Code:      b.Code,
	}
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.Attributes())
}

func (b *CouponBuilder) BuildInput() commands.CouponInput {
	return commands.CouponInput{
		Title:     b.Title,
		IsEnabled: b.IsEnabled,
		Percent:   b.Percent,
		DueDate:   b.DueDate,
		Code:      b.Code,
	}
}

func (b *CouponBuilder) BuildParams() couponapi.CreateCouponParams {
	return couponapi.CreateCouponParams{
		Title:     b.Title,
		IsEnabled: couponapi.IsEnabledFlag(b.IsEnabled),
		Percent:   b.Percent,
		DueDate:   b.DueDate,
		Code:      b.Code,
	}
}

func (b *CouponBuilder) BuildEditParams(id uuid.UUID) couponapi.EditCouponParams {
	params := couponapi.EditCouponParams{Data: b.BuildParams()}
	if id != uuid.Nil {
		params.ID = id.String()
	}
	return params
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	now := time.Now()
	percent, _ := pgconv.NumericFromFloat64(b.Percent)

	var usage pgtype.Int4
	if b.UsageCount != nil {
		usage = pgtype.Int4{Int32: int32(*b.UsageCount), Valid: true} // #nosec G115 -- test data
	}

	return sqlc.Coupons{
		ID:         uuid.New(),
		Title:      b.Title,
		IsEnabled:  b.IsEnabled,
		Percent:    percent,
		DueDate:    pgtype.Timestamptz{Time: time.Unix(b.DueDate, 0).UTC(), Valid: true},
		Code:       b.Code,
		UsageCount: usage,
		CreatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	now := time.Now()
	return &queries.CouponView{
		ID:         uuid.New(),
		Title:      b.Title,
		IsEnabled:  b.IsEnabled,
		Percent:    b.Percent,
		DueDate:    time.Unix(b.DueDate, 0).UTC(),
		Code:       b.Code,
		UsageCount: b.UsageCount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithTitle(title string) *CouponBuilder {
	b.Title = title
	return b
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithPercent(percent float64) *CouponBuilder {
	b.Percent = percent
	return b
}

func (b *CouponBuilder) WithDueDate(unix int64) *CouponBuilder {
	b.DueDate = unix
	return b
}

func (b *CouponBuilder) WithUsageCount(n *int) *CouponBuilder {
	b.UsageCount = n
	return b
}

func (b *CouponBuilder) AsDisabled() *CouponBuilder {
	b.IsEnabled = false
	return b
}
