package main

import (
	"log/slog"

	"github.com/Eursukkul/eventhub/internal/handler"
	"github.com/Eursukkul/eventhub/internal/repository"
	"github.com/Eursukkul/eventhub/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		infraModule,
		repositoryModule,
		serviceModule,
		handlerModule,

		fx.Provide(NewServer),
		fx.Invoke(StartServer),
	)

	app.Run()
}

var infraModule = fx.Options(
	fx.Provide(
		provideConfig,
		provideLogger,
		provideDB,
		provideNotifier,
		provideClock,
		provideDeletePolicy,
		provideMetrics,
	),
)

var repositoryModule = fx.Options(
	fx.Provide(
		repository.NewEventRepository,
		repository.NewCategoryRepository,
		repository.NewParticipantRepository,
	),
)

var serviceModule = fx.Options(
	fx.Provide(
		service.NewEventService,
		service.NewCategoryService,
		service.NewParticipantService,
		service.NewDashboardService,
	),
)

var handlerModule = fx.Options(
	fx.Provide(
		handler.NewDashboardHandler,
		handler.NewEventHandler,
		handler.NewCategoryHandler,
		handler.NewParticipantHandler,
	),
)
