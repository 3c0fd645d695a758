package request

import (
	"errors"
	"strings"

	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/pkg/sanitize"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/pkg/couponapi"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponID  = errors.New("invalid coupon id")
	ErrCouponIDMismatch = errors.New("body id does not match path id")
)

type CreateCouponRequest struct {
	couponapi.CreateCouponParams
}

func (r *CreateCouponRequest) ToInput() (commands.CouponInput, error) {
	return toCouponInput(r.CreateCouponParams)
}

type EditCouponRequest struct {
	couponapi.EditCouponParams
}

// ResolveID returns the coupon to edit. An empty body id defers to the path.
func (r *EditCouponRequest) ResolveID(pathID uuid.UUID) (uuid.UUID, error) {
	bodyID := strings.TrimSpace(r.ID)
	if bodyID == "" {
		return pathID, nil
	}

	id, err := uuid.Parse(bodyID)
	if err != nil {
		return uuid.Nil, ErrInvalidCouponID
	}
	if id != pathID {
		return uuid.Nil, ErrCouponIDMismatch
	}
	return id, nil
}

func (r *EditCouponRequest) ToInput() (commands.CouponInput, error) {
	return toCouponInput(r.Data)
}

func ParseCouponID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrInvalidCouponID
	}
	return id, nil
}

func toCouponInput(p couponapi.CreateCouponParams) (commands.CouponInput, error) {
	enabled, err := coupon.ParseEnabledFlag(p.IsEnabled)
	if err != nil {
		return commands.CouponInput{}, err
	}

	return commands.CouponInput{
		Title:     sanitize.PlainText(p.Title),
		IsEnabled: enabled,
		Percent:   p.Percent,
		DueDate:   p.DueDate,
		Code:      strings.TrimSpace(p.Code),
	}, nil
}
