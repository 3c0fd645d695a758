//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errNotFound  = infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	errDuplicate = infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)
	errDBDown    = infra.WrapRepoErr("query failed", errors.New("connection refused"))
)

func seedCoupon(t *testing.T, uow *fakeUoW) *coupon.Coupon {
	t.Helper()
	c, err := builder.NewCouponBuilder().BuildDomain()
	require.NoError(t, err)
	uow.tx.coupons.stored[c.ID()] = c
	return c
}

func TestCouponCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new coupon", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewCouponCommands(uow)

		result, err := cmds.Create(ctx, builder.NewCouponBuilder().BuildInput())

		require.NoError(t, err)
		require.Contains(t, uow.tx.coupons.stored, result.CouponID)
		stored := uow.tx.coupons.stored[result.CouponID]
		assert.Equal(t, "SUMMER10", stored.Code().String())
		assert.True(t, stored.IsEnabled())
	})

	t.Run("rejects invalid fields before touching storage", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewCouponCommands(uow)

		_, err := cmds.Create(ctx, builder.NewCouponBuilder().WithPercent(0).BuildInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidationFailed))
		assert.True(t, errs.Is(err, coupon.ErrInvalidPercent))
		assert.Empty(t, uow.tx.coupons.stored)
	})

	t.Run("maps storage failures", func(t *testing.T) {
		cases := []struct {
			name     string
			repoErr  error
			expected error
		}{
			{name: "duplicate code", repoErr: errDuplicate, expected: errs.ErrDuplicateCouponCode},
			{name: "database down", repoErr: errDBDown, expected: errs.ErrDatabaseOperationFailed},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uow := newFakeUoW()
				uow.tx.coupons.createErr = tc.repoErr
				cmds := commands.NewCouponCommands(uow)

				_, err := cmds.Create(ctx, builder.NewCouponBuilder().BuildInput())

				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expected))
			})
		}
	})
}

func TestCouponCommands_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every mutable field", func(t *testing.T) {
		uow := newFakeUoW()
		existing := seedCoupon(t, uow)
		cmds := commands.NewCouponCommands(uow)

		in := builder.NewCouponBuilder().
			WithTitle("Winter Sale").
			WithCode("WINTER20").
			WithPercent(20).
			WithDueDate(1767225600).
			AsDisabled().
			BuildInput()
		err := cmds.Edit(ctx, existing.ID(), in)

		require.NoError(t, err)
		assert.Equal(t, 1, uow.tx.coupons.updates)
		updated := uow.tx.coupons.stored[existing.ID()]
		assert.Equal(t, "Winter Sale", updated.Title().String())
		assert.Equal(t, "WINTER20", updated.Code().String())
		assert.Equal(t, 20.0, updated.Percent().Float64())
		assert.Equal(t, int64(1767225600), updated.DueDate().Unix())
		assert.False(t, updated.IsEnabled())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewCouponCommands(uow)

		err := cmds.Edit(ctx, uuid.New(), builder.NewCouponBuilder().BuildInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCouponNotFound))
	})

	t.Run("invalid input leaves the coupon untouched", func(t *testing.T) {
		uow := newFakeUoW()
		existing := seedCoupon(t, uow)
		cmds := commands.NewCouponCommands(uow)

		err := cmds.Edit(ctx, existing.ID(), builder.NewCouponBuilder().WithTitle("").BuildInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidationFailed))
		assert.Equal(t, 0, uow.tx.coupons.updates)
		assert.Equal(t, "Summer Sale", uow.tx.coupons.stored[existing.ID()].Title().String())
	})

	t.Run("code taken by another coupon", func(t *testing.T) {
		uow := newFakeUoW()
		existing := seedCoupon(t, uow)
		uow.tx.coupons.updateErr = errDuplicate
		cmds := commands.NewCouponCommands(uow)

		err := cmds.Edit(ctx, existing.ID(), builder.NewCouponBuilder().WithCode("TAKEN").BuildInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDuplicateCouponCode))
	})
}

func TestCouponCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the coupon", func(t *testing.T) {
		uow := newFakeUoW()
		existing := seedCoupon(t, uow)
		cmds := commands.NewCouponCommands(uow)

		require.NoError(t, cmds.Delete(ctx, existing.ID()))
		assert.NotContains(t, uow.tx.coupons.stored, existing.ID())
	})

	t.Run("second delete is not found", func(t *testing.T) {
		uow := newFakeUoW()
		existing := seedCoupon(t, uow)
		cmds := commands.NewCouponCommands(uow)

		require.NoError(t, cmds.Delete(ctx, existing.ID()))
		err := cmds.Delete(ctx, existing.ID())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCouponNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.coupons.deleteErr = errDBDown
		cmds := commands.NewCouponCommands(uow)

		err := cmds.Delete(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
