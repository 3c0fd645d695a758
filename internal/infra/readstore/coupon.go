package readstore

import (
	"context"
	"time"

	"coupon-admin/internal/infra"
	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/pgconv"
	"coupon-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadQueries interface {
	CountCoupons(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsParams) ([]sqlc.Coupons, error)
	CountCouponsByState(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (sqlc.CountCouponsByStateRow, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
}

func NewCouponReadStore(queries CouponReadQueries) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
	}
}

func (r *CouponReadStore) Count(ctx context.Context, db sqlc.DBTX) (int64, error) {
	total, err := r.queries.CountCoupons(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons", err)
	}
	return total, nil
}

// List returns coupons newest first; ties on created_at fall back to id.
func (r *CouponReadStore) List(ctx context.Context, db sqlc.DBTX, limit, offset int32) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, db, sqlc.ListCouponsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	views := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		view, err := toCouponViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert coupon row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *CouponReadStore) CountByState(ctx context.Context, db sqlc.DBTX, now time.Time) (*queries.CouponStats, error) {
	row, err := r.queries.CountCouponsByState(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count coupons by state", err)
	}
	return &queries.CouponStats{
		Total:   row.Total,
		Enabled: row.Enabled,
		Expired: row.Expired,
	}, nil
}

func toCouponViewFromRow(row sqlc.Coupons) (*queries.CouponView, error) {
	percent, err := pgconv.Float64FromNumeric(row.Percent)
	if err != nil {
		return nil, err
	}

	return &queries.CouponView{
		ID:         row.ID,
		Title:      row.Title,
		IsEnabled:  row.IsEnabled,
		Percent:    percent,
		DueDate:    pgconv.TimeFromPgtype(row.DueDate),
		Code:       row.Code,
		UsageCount: pgconv.IntPtrFromPgtype(row.UsageCount),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
