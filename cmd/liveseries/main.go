package main

import (
	"context"
	"log/slog"
	"os"

	"liveseries/config"
	"liveseries/internal/delivery"
	"liveseries/internal/delivery/http"
	"liveseries/internal/delivery/http/middleware"
	"liveseries/internal/delivery/http/router/handler"
	"liveseries/internal/infra/auth"
	"liveseries/internal/infra/catalogue"
	logs "liveseries/internal/infra/log"
	"liveseries/internal/infra/persistence/postgres"
	"liveseries/internal/infra/remote"
	"liveseries/internal/tracker"
	"liveseries/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewShowRepository,
			postgres.NewWatchedRepository,
			postgres.NewPageRepository,
			postgres.NewUpdatedRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewCredentialBroker,
			catalogue.NewClient,
			remote.NewNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShowService,
			impl.NewWatchedService,
			impl.NewPageService,
			impl.NewUpdatedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShowHandler,
			handler.NewWatchedHandler,
			handler.NewPageHandler,
			handler.NewUpdatedHandler,
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
			fx.Annotate(
				tracker.New,
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
