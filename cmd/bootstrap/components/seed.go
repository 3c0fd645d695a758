package components

import (
	"context"
	"log/slog"

	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedAdmin),
)

func seedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if !cfg.Admin.Enabled() {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
			if err != nil {
				return err
			}
			if created {
				logger.Info("admin account created", "email", cfg.Admin.Email)
			}
			return nil
		},
	})
}
