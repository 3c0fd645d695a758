//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/clock"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/queries"
	"coupon-admin/internal/usecase/shared"
	"coupon-admin/tests/common/builder"
	queriesmock "coupon-admin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inlineUoW runs callbacks directly and counts which mode was used.
type inlineUoW struct {
	readOnly int
	plain    int
}

func (u *inlineUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return errors.New("write transaction not expected in queries")
}

func (u *inlineUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.readOnly++
	return fn(ctx, nil)
}

func (u *inlineUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	u.plain++
	return fn(ctx, nil)
}

func newCouponQueries(t *testing.T, now time.Time) (queries.CouponQueries, *queriesmock.MockCouponReadStore, *inlineUoW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	uow := &inlineUoW{}
	cfg := config.NewTestConfig()
	cfg.Coupon.PageSize = 10
	return queries.NewCouponQueries(uow, store, clock.NewMockClock(now), cfg), store, uow
}

func TestCouponQueries_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reads the requested window in one snapshot", func(t *testing.T) {
		q, store, uow := newCouponQueries(t, now)
		items := []*queries.CouponView{builder.NewCouponBuilder().BuildView()}
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(25), nil)
		store.EXPECT().List(gomock.Any(), gomock.Any(), int32(10), int32(10)).Return(items, nil)

		page, err := q.List(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.Equal(t, items, page.Items)
		assert.Equal(t, 1, uow.readOnly)
	})

	t.Run("clamps pages past the end", func(t *testing.T) {
		q, store, _ := newCouponQueries(t, now)
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(25), nil)
		store.EXPECT().List(gomock.Any(), gomock.Any(), int32(10), int32(20)).Return([]*queries.CouponView{}, nil)

		page, err := q.List(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, 3, page.CurrentPage)
	})

	t.Run("empty table skips the row query", func(t *testing.T) {
		q, store, _ := newCouponQueries(t, now)
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		page, err := q.List(ctx, 1)

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
	})

	t.Run("page below one never reaches the store", func(t *testing.T) {
		q, _, uow := newCouponQueries(t, now)

		_, err := q.List(ctx, 0)

		assert.True(t, errs.Is(err, errs.ErrInvalidPage))
		assert.Equal(t, 0, uow.readOnly)
	})

	t.Run("store failure", func(t *testing.T) {
		q, store, _ := newCouponQueries(t, now)
		store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := q.List(ctx, 1)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestCouponQueries_Stats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("counts against the clock", func(t *testing.T) {
		q, store, uow := newCouponQueries(t, now)
		expected := &queries.CouponStats{Total: 5, Enabled: 3, Expired: 1}
		store.EXPECT().CountByState(gomock.Any(), gomock.Any(), now).Return(expected, nil)

		stats, err := q.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, stats)
		assert.Equal(t, 1, uow.plain)
	})

	t.Run("store failure", func(t *testing.T) {
		q, store, _ := newCouponQueries(t, now)
		store.EXPECT().CountByState(gomock.Any(), gomock.Any(), now).Return(nil, errors.New("timeout"))

		_, err := q.Stats(ctx)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
