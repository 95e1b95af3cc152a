package bootstrap

import (
	"flashbooth/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobsModule,
)
