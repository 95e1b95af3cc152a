package bootstrap

import (
	"flashbooth/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		// Sub-configs for constructors that only need a slice of the whole.
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
		func(cfg config.Config) config.TwilioConfig { return cfg.Twilio },
	),
)
