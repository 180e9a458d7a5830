package main

import (
	"context"
	"log/slog"
	"os"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/delivery/http/router/handler"
	"eventhub/internal/infra/auth"
	"eventhub/internal/infra/cache"
	logs "eventhub/internal/infra/log"
	"eventhub/internal/infra/notification"
	"eventhub/internal/infra/persistence/postgres"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/infra/qrcode"
	"eventhub/internal/infra/storage"
	"eventhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

// injectRepo provides the database, repositories and startup migrations.
func injectRepo() fx.Option {
	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewVendorIDCacheFromConfig,
			notification.NewNotificationService,
			qrcode.NewQRCodeServiceFromConfig,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewVendorProfileService,
			impl.NewInquiryService,
			impl.NewAnalyticsService,
			impl.NewPlannerService,
			impl.NewVendorDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewVendorProfileHandler,
			handler.NewVendorDashboardHandler,
			handler.NewInquiryHandler,
			handler.NewAnalyticsHandler,
			handler.NewPlannerHandler,
			handler.NewPubSubPushHandler,
			handler.NewUploadsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
