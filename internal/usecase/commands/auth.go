package commands

import (
	"context"
	"log/slog"
	"time"

	"coupon-admin/internal/domain/auth"
	"coupon-admin/internal/domain/user"
	"coupon-admin/internal/infra"
	sqlc "coupon-admin/internal/infra/sqlc/generated"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/password"
	"coupon-admin/internal/usecase/queries"
	"coupon-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_commands_mock.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	// EnsureAdmin creates the bootstrap admin unless an account with that email exists.
	EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, expiresAt, err := a.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded
		slog.WarnContext(ctx, "failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    view.ID,
		Role:      role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if _, err := user.NewPassword(plainPassword); err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return false, errs.Wrap(err, "hash admin password")
	}

	admin := user.NewUser(addr, hash, user.RoleAdmin)

	var created bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Users().CreateIfAbsent(ctx, tx.DB(), admin)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return created, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	var (
		view *queries.AuthorizedUserView
		hash string
	)
	err := a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, hash, err = a.readStore.FindByEmail(ctx, db, credentials.Email().Value())
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so accounts cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	// only reported to callers who proved the password
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
