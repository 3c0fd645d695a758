//go:build unit

package commands_test

import (
	"context"
	"time"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/user"
	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs every callback inline against in-memory repositories.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		coupons: &fakeCouponRepo{stored: map[uuid.UUID]*coupon.Coupon{}},
		users:   &fakeUserRepo{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	coupons *fakeCouponRepo
	users   *fakeUserRepo
}

func (t *fakeTx) Coupons() shared.CouponRepository { return t.coupons }
func (t *fakeTx) Users() shared.UserRepository     { return t.users }
func (t *fakeTx) DB() sqlc.DBTX                    { return nil }

type fakeCouponRepo struct {
	stored    map[uuid.UUID]*coupon.Coupon
	createErr error
	findErr   error
	updateErr error
	deleteErr error
	updates   int
}

func (r *fakeCouponRepo) Create(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.stored[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.stored[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCouponRepo) Update(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.stored[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.stored[id]; !ok {
		return errNotFound
	}
	delete(r.stored, id)
	return nil
}

type fakeUserRepo struct {
	created      []*user.User
	exists       bool
	createErr    error
	lastLoginErr error
	lastLoginFor []uuid.UUID
}

func (r *fakeUserRepo) CreateIfAbsent(_ context.Context, _ sqlc.DBTX, u *user.User) (bool, error) {
	if r.createErr != nil {
		return false, r.createErr
	}
	if r.exists {
		return false, nil
	}
	r.created = append(r.created, u)
	return true, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	r.lastLoginFor = append(r.lastLoginFor, userID)
	return r.lastLoginErr
}

type fakeTokenIssuer struct {
	token     string
	expiresAt time.Time
	err       error
	issuedFor uuid.UUID
	role      user.Role
}

func (f *fakeTokenIssuer) GenerateToken(userID uuid.UUID, role user.Role) (string, time.Time, error) {
	f.issuedFor = userID
	f.role = role
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return f.token, f.expiresAt, nil
}
