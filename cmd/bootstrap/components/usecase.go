package components

import (
	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/config"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"
	"tokengate/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		wallet.NewEthereumVerifier,
		fx.As(new(wallet.SignatureVerifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, verifier wallet.SignatureVerifier, clk clock.Clock, cfg config.Config) commands.VerificationCommands {
			return commands.NewVerificationUseCase(uow, verifier, clk, cfg.Verification.SessionTTL)
		},
		commands.NewDiscountUseCase,
		commands.NewRuleUseCase,
		commands.NewShopUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(uow shared.UnitOfWork, oracle token.Oracle, clk clock.Clock, cfg config.Config) queries.EligibilityQueries {
			return queries.NewEligibilityQueries(uow, oracle, clk, queries.EligibilityOptions{
				Workers:     cfg.Verification.EligibilityWorkers,
				RuleTimeout: cfg.Verification.RuleTimeout,
			})
		},
		queries.NewRuleQueries,
	),
)
