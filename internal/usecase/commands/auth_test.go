//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coupon-admin/internal/domain/user"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/password"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/tests/common/builder"
	queriesmock "coupon-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	uow       *fakeUoW
	readStore *queriesmock.MockUserReadStore
	tokens    *fakeTokenIssuer
	cmds      commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &authFixture{
		uow:       newFakeUoW(),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		tokens:    &fakeTokenIssuer{token: "signed-token", expiresAt: time.Unix(1767225600, 0)},
	}
	f.cmds = commands.NewAuthCommands(f.uow, f.readStore, f.tokens)
	return f
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	credentials, err := builder.NewAuthBuilder().BuildDomain()
	require.NoError(t, err)
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("issues a token and records the login", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().WithRole("operator").BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "test@example.com").Return(view, hash, nil)

		result, err := f.cmds.Login(ctx, credentials)

		require.NoError(t, err)
		assert.Equal(t, view.ID, result.UserID)
		assert.Equal(t, user.RoleOperator, result.Role)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, int64(1767225600), result.ExpiresAt.Unix())
		assert.Equal(t, view.ID, f.tokens.issuedFor)
		assert.Equal(t, user.RoleOperator, f.tokens.role)
		assert.Equal(t, []uuid.UUID{view.ID}, f.uow.tx.users.lastLoginFor)
	})

	t.Run("last login failure does not fail sign in", func(t *testing.T) {
		f := newAuthFixture(t)
		f.uow.tx.users.lastLoginErr = errors.New("write failed")
		view := builder.NewUserBuilder().BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(view, hash, nil)

		result, err := f.cmds.Login(ctx, credentials)

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, errUnknown := f.cmds.Login(ctx, credentials)

		f2 := newAuthFixture(t)
		otherHash, err := password.HashPassword("something-else")
		require.NoError(t, err)
		f2.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().BuildReadModel(), otherHash, nil)

		_, errWrong := f2.cmds.Login(ctx, credentials)

		assert.True(t, errs.Is(errUnknown, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(errWrong, commands.ErrInvalidCredentials))
		assert.Equal(t, uuid.Nil, f2.tokens.issuedFor)
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), hash, nil)

		_, err := f.cmds.Login(ctx, credentials)

		assert.True(t, errs.Is(err, commands.ErrUserInactive))
		assert.Empty(t, f.uow.tx.users.lastLoginFor)
	})

	t.Run("inactive account with wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		otherHash, err := password.HashPassword("something-else")
		require.NoError(t, err)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), otherHash, nil)

		_, err = f.cmds.Login(ctx, credentials)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.False(t, errs.Is(err, commands.ErrUserInactive))
	})

	t.Run("token signing failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.err = errors.New("no key")
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().BuildReadModel(), hash, nil)

		_, err := f.cmds.Login(ctx, credentials)

		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("query failed", errors.New("timeout")))

		_, err := f.cmds.Login(ctx, credentials)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestAuthCommands_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the admin with a bcrypt hash", func(t *testing.T) {
		f := newAuthFixture(t)

		created, err := f.cmds.EnsureAdmin(ctx, "admin@example.com", "s3cret-pass")

		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, f.uow.tx.users.created, 1)
		admin := f.uow.tx.users.created[0]
		assert.Equal(t, "admin@example.com", admin.Email().Value())
		assert.Equal(t, user.RoleAdmin, admin.Role())
		assert.NoError(t, password.ComparePassword(admin.PasswordHash(), "s3cret-pass"))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.uow.tx.users.exists = true

		created, err := f.cmds.EnsureAdmin(ctx, "admin@example.com", "s3cret-pass")

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("rejects bad seed values", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.EnsureAdmin(ctx, "not-an-email", "s3cret-pass")
		assert.True(t, errs.Is(err, errs.ErrDomainValidationFailed))

		_, err = f.cmds.EnsureAdmin(ctx, "admin@example.com", "short")
		assert.True(t, errs.Is(err, user.ErrPasswordTooWeak))

		assert.Empty(t, f.uow.tx.users.created)
	})
}
