package request

import (
	"coupon-admin/internal/domain/auth"
	"coupon-admin/pkg/couponapi"
)

type SignInRequest struct {
	couponapi.SignInParams
}

func (r *SignInRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}
