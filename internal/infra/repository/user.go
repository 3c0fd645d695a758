package repository

import (
	"context"

	"coupon-admin/internal/domain/user"
	"coupon-admin/internal/infra"
	sqlc "coupon-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUserIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserIfAbsentParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, u *user.User) (bool, error) {
	affected, err := r.queries.CreateUserIfAbsent(ctx, tx, sqlc.CreateUserIfAbsentParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create user", err)
	}
	return affected > 0, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
