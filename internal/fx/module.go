package fx

import "go.uber.org/fx"

// AppModule assembles every module of the application
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)
