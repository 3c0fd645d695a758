package commands

import (
	"context"
	"log/slog"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/metrics"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_commands_mock.go -package=commandsmock

const (
	opCreate = "create"
	opEdit   = "edit"
	opDelete = "delete"
)

type CreateCouponResult struct {
	CouponID uuid.UUID
}

type CouponCommands interface {
	Create(ctx context.Context, in CouponInput) (*CreateCouponResult, error)
	Edit(ctx context.Context, id uuid.UUID, in CouponInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (c *couponCommandsImpl) Create(ctx context.Context, in CouponInput) (result *CreateCouponResult, err error) {
	defer func() { metrics.RecordCouponMutation(opCreate, err) }()

	entity, err := coupon.NewCoupon(in.attributes())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, translateCouponErr(err)
	}

	slog.InfoContext(ctx, "coupon created",
		"coupon_id", entity.ID(),
		"code", entity.Code().String())

	return &CreateCouponResult{CouponID: entity.ID()}, nil
}

func (c *couponCommandsImpl) Edit(ctx context.Context, id uuid.UUID, in CouponInput) (err error) {
	defer func() { metrics.RecordCouponMutation(opEdit, err) }()

	attrs := in.attributes()
	if err = attrs.Validate(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Coupons().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := current.Replace(attrs); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		return tx.Coupons().Update(ctx, tx.DB(), current)
	})
	if err != nil {
		return translateCouponErr(err)
	}

	slog.InfoContext(ctx, "coupon updated", "coupon_id", id)
	return nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer func() { metrics.RecordCouponMutation(opDelete, err) }()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return translateCouponErr(err)
	}

	slog.InfoContext(ctx, "coupon deleted", "coupon_id", id)
	return nil
}

func translateCouponErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrDomainValidationFailed):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrCouponNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateCouponCode)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
