package components

import (
	"plateful/internal/domain/bundle"
	"plateful/internal/pkg/clock"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	bundle.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseLimitGuard,
		commands.NewVoucherMaterializer,
		commands.NewBundleTemplateCommands,
		commands.NewVoucherTemplateCommands,
		commands.NewRedemptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBundleQueries,
		queries.NewVoucherQueries,
	),
)
