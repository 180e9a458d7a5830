package postgres

import "go.uber.org/fx"

// Module provides the database connection, repositories and startup migrations.
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewUserRepository,
		NewAuthRepository,
		NewVendorProfileRepository,
		NewInquiryRepository,
		NewAnalyticsRepository,
		NewPlannerRepository,
	),
	fx.Invoke(RegisterMigrations),
)
