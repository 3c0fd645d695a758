package response

import (
	"time"

	"coupon-admin/internal/usecase/queries"
	"coupon-admin/pkg/couponapi"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var couponCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: false,
			DstType: 0,
			Fn: func(src interface{}) (interface{}, error) {
				return couponapi.IsEnabledFlag(src.(bool)), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func NewCoupon(view *queries.CouponView) (couponapi.Coupon, error) {
	var out couponapi.Coupon
	if err := copier.CopyWithOption(&out, view, couponCopyOption); err != nil {
		return couponapi.Coupon{}, err
	}
	if view.UsageCount != nil {
		num := *view.UsageCount
		out.Num = &num
	}
	return out, nil
}

func NewGetCouponsResponse(page *queries.CouponPage) (couponapi.GetCouponsResponse, error) {
	coupons := make([]couponapi.Coupon, 0, len(page.Items))
	for _, item := range page.Items {
		c, err := NewCoupon(item)
		if err != nil {
			return couponapi.GetCouponsResponse{}, err
		}
		coupons = append(coupons, c)
	}

	return couponapi.GetCouponsResponse{
		Success:    true,
		Coupons:    coupons,
		Pagination: couponapi.NewPagination(page.TotalPages, page.CurrentPage),
		Messages:   []string{},
	}, nil
}

func NewCouponResponse(message string) couponapi.CouponResponse {
	return couponapi.CouponResponse{
		Success: true,
		Message: message,
	}
}
