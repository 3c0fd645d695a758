package shared

import (
	"context"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/user"
	sqlc "coupon-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot for multi-statement consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Coupons() CouponRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	// CreateIfAbsent reports whether a row was inserted; an existing email is left untouched.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, u *user.User) (bool, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
