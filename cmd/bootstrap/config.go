package bootstrap

import (
	"course-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.UploadConfig { return cfg.Upload },
		func(cfg config.Config) config.InvoiceConfig { return cfg.Invoice },
	),
)
