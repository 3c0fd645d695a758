package bootstrap

import (
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/jwt"
	"coupon-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenIssuer)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must be set")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
