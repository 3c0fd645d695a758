package repository

import (
	"context"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/infra"
	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (int64, error)
	DeleteCoupon(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{
		queries: queries,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	percent, err := pgconv.NumericFromFloat64(c.Percent().Float64())
	if err != nil {
		return infra.WrapRepoErr("failed to convert coupon percent", err)
	}

	_, err = r.queries.CreateCoupon(ctx, tx, sqlc.CreateCouponParams{
		ID:        c.ID(),
		Title:     c.Title().String(),
		IsEnabled: c.IsEnabled(),
		Percent:   percent,
		DueDate:   pgconv.TimeToPgtype(c.DueDate().Time()),
		Code:      c.Code().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// FindForUpdate locks the row until the surrounding transaction ends.
func (r *CouponRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	entity, err := toCouponEntity(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return entity, nil
}

func (r *CouponRepository) Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	percent, err := pgconv.NumericFromFloat64(c.Percent().Float64())
	if err != nil {
		return infra.WrapRepoErr("failed to convert coupon percent", err)
	}

	affected, err := r.queries.UpdateCoupon(ctx, tx, sqlc.UpdateCouponParams{
		ID:        c.ID(),
		Title:     c.Title().String(),
		IsEnabled: c.IsEnabled(),
		Percent:   percent,
		DueDate:   pgconv.TimeToPgtype(c.DueDate().Time()),
		Code:      c.Code().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteCoupon(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func toCouponEntity(row sqlc.Coupons) (*coupon.Coupon, error) {
	percent, err := pgconv.Float64FromNumeric(row.Percent)
	if err != nil {
		return nil, err
	}

	return coupon.ReconstructCoupon(
		row.ID,
		row.Title,
		row.IsEnabled,
		percent,
		pgconv.TimeFromPgtype(row.DueDate),
		row.Code,
		pgconv.IntPtrFromPgtype(row.UsageCount),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
