package components

import (
	"coupon-admin/internal/handler"
	"coupon-admin/internal/handler/api"
	"coupon-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, coupon *api.CouponHandler) handler.Handlers {
	return handler.Handlers{
		Auth:   auth,
		Coupon: coupon,
	}
}
