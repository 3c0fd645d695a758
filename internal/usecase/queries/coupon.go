package queries

import (
	"context"
	"time"

	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/shared"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_queries_mock.go -package=queriesmock

type CouponReadStore interface {
	Count(ctx context.Context, db sqlc.DBTX) (int64, error)
	List(ctx context.Context, db sqlc.DBTX, limit, offset int32) ([]*CouponView, error)
	CountByState(ctx context.Context, db sqlc.DBTX, now time.Time) (*CouponStats, error)
}

type CouponQueries interface {
	List(ctx context.Context, page int) (*CouponPage, error)
	Stats(ctx context.Context) (*CouponStats, error)
}

type couponQueriesImpl struct {
	uow      shared.UnitOfWork
	store    CouponReadStore
	clock    clock.Clock
	pageSize int
}

func NewCouponQueries(uow shared.UnitOfWork, store CouponReadStore, clk clock.Clock, cfg config.Config) CouponQueries {
	return &couponQueriesImpl{
		uow:      uow,
		store:    store,
		clock:    clk,
		pageSize: cfg.Coupon.PageSize,
	}
}

// List counts and reads inside one snapshot so the page window matches the rows.
func (q *couponQueriesImpl) List(ctx context.Context, page int) (*CouponPage, error) {
	if page < 1 {
		return nil, errs.ErrInvalidPage
	}

	var result *CouponPage
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		total, err := q.store.Count(ctx, db)
		if err != nil {
			return err
		}

		window, err := ResolvePage(page, total, q.pageSize)
		if err != nil {
			return err
		}

		items := []*CouponView{}
		if total > 0 {
			items, err = q.store.List(ctx, db, window.Limit, window.Offset)
			if err != nil {
				return err
			}
		}

		result = &CouponPage{
			Items:       items,
			CurrentPage: window.Page,
			TotalPages:  window.TotalPages,
			TotalCount:  total,
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrInvalidPage) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return result, nil
}

func (q *couponQueriesImpl) Stats(ctx context.Context) (*CouponStats, error) {
	var stats *CouponStats
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		stats, err = q.store.CountByState(ctx, db, q.clock.Now())
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return stats, nil
}
