// Command mockd serves the StarFund API over HTTP on top of the local mock
// backend. It exists so the client's remote mode can be exercised end to end
// without the production platform.
package main

import (
	"context"
	"log/slog"
	"os"

	"starfund/config"
	"starfund/internal/delivery"
	"starfund/internal/delivery/http"
	"starfund/internal/delivery/http/middleware"
	"starfund/internal/delivery/http/router/handler"
	"starfund/internal/domain/repository"
	"starfund/internal/domain/service"
	"starfund/internal/infra/auth"
	"starfund/internal/infra/localstore"
	logs "starfund/internal/infra/log"
	"starfund/internal/infra/persistence/local"

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		newLocalStore,
		auth.NewBcryptHasher,
		auth.NewJWTService,
	)
}

func newLocalStore(cfg *config.Config) (*localstore.Store, error) {
	return localstore.New(cfg.Storage.Dir)
}

// injectRepo always wires the local backend; serving it over HTTP is the
// whole point of this binary.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProjectStore,
			newInvestmentStore,
			newUserStore,
			local.NewTransactionLog,
			local.NewStatistics,
			local.NewVNPayGateway,
		),
		fx.Provide(
			func(s *local.UserStore) repository.Authenticator { return s },
			func(s *local.UserStore) repository.UserDirectory { return s },
			func(s *local.ProjectStore) repository.ProjectRepository { return s },
			func(s *local.InvestmentStore) repository.InvestmentRepository { return s },
			func(l *local.TransactionLog) repository.TransactionLog { return l },
			func(s *local.Statistics) repository.StatisticsProvider { return s },
			func(g *local.VNPayGateway) repository.PaymentGateway { return g },
		),
	)
}

func newProjectStore(cfg *config.Config, store *localstore.Store) *local.ProjectStore {
	return local.NewProjectStore(store, cfg.Mock.Latency)
}

func newInvestmentStore(cfg *config.Config, store *localstore.Store, projects *local.ProjectStore) *local.InvestmentStore {
	return local.NewInvestmentStore(store, projects, cfg.Mock.Latency)
}

func newUserStore(cfg *config.Config, store *localstore.Store, hasher service.PasswordHasher, tokens service.TokenService) *local.UserStore {
	return local.NewUserStore(store, hasher, tokens, cfg.Mock.Latency)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProjectHandler,
			handler.NewInvestmentHandler,
			handler.NewUserHandler,
			handler.NewTransactionHandler,
			handler.NewStatisticsHandler,
			handler.NewPaymentHandler,
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
