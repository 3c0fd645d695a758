//go:build unit || e2e

package builder

import (
	"coupon-admin/internal/domain/auth"
	"coupon-admin/pkg/couponapi"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() couponapi.SignInParams {
	return couponapi.SignInParams{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildDomain() (auth.Credentials, error) {
	return auth.NewCredentials(a.Email, a.Password)
}
