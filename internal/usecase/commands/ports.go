package commands

import (
	"time"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/user"

	"github.com/google/uuid"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, time.Time, error)
}

// CouponInput is the validated-by-domain payload of create and edit.
type CouponInput struct {
	Title     string
	IsEnabled bool
	Percent   float64
	DueDate   int64
	Code      string
}

func (in CouponInput) attributes() coupon.Attributes {
	return coupon.Attributes{
		Title:     in.Title,
		IsEnabled: in.IsEnabled,
		Percent:   in.Percent,
		DueDate:   in.DueDate,
		Code:      in.Code,
	}
}
