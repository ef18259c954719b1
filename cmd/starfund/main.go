// Command starfund is the terminal client of the StarFund platform. With a
// configured API baseUrl it talks to the remote service; without one it runs
// entirely on the local mock backend.
package main

import (
	"context"
	"log/slog"
	"os"

	"starfund/config"
	"starfund/internal/delivery"
	"starfund/internal/delivery/cli"
	"starfund/internal/domain/repository"
	"starfund/internal/domain/service"
	"starfund/internal/infra/auth"
	"starfund/internal/infra/localstore"
	logs "starfund/internal/infra/log"
	"starfund/internal/infra/persistence/local"
	"starfund/internal/infra/qrcode"
	"starfund/internal/infra/remote"
	"starfund/internal/navigator"
	"starfund/internal/session"
	"starfund/internal/usecase/impl"

	"go.uber.org/fx"
)

type startClientParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The repository wiring depends on the mode, so the config is loaded
	// before the graph is assembled.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startClient,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		newLocalStore,
		session.New,
		navigator.New,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		newQRCodeService,
	)
}

// newLocalStore opens the client's durable document store. Both modes need
// it: the session lives there even when the data comes from the remote API.
func newLocalStore(cfg *config.Config) (*localstore.Store, error) {
	return localstore.New(cfg.Storage.Dir)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// injectRepo selects the data access layer once, at startup: the local mock
// backend when no API baseUrl is configured, the remote client otherwise.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.UseMock() {
		return injectMockRepo()
	}

	return injectRemoteRepo()
}

func injectMockRepo() fx.Option {
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

func injectRemoteRepo() fx.Option {
	return fx.Provide(
		func(sess *session.Store) remote.TokenSource { return sess },
		remote.NewClient,
		func(c *remote.Client) repository.Authenticator { return remote.NewAuthClient(c) },
		func(c *remote.Client) repository.UserDirectory { return remote.NewUserClient(c) },
		func(c *remote.Client) repository.ProjectRepository { return remote.NewProjectClient(c) },
		func(c *remote.Client) repository.InvestmentRepository { return remote.NewInvestmentClient(c) },
		func(c *remote.Client) repository.TransactionLog { return remote.NewTransactionClient(c) },
		func(c *remote.Client) repository.StatisticsProvider { return remote.NewStatisticsClient(c) },
		func(c *remote.Client) repository.PaymentGateway { return remote.NewPaymentClient(c) },
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProjectService,
			impl.NewInvestmentService,
			impl.NewAdminService,
			impl.NewStatisticsService,
			impl.NewPaymentService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cli.NewCLI,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startClient(ctx context.Context, params startClientParams, shutdowner fx.Shutdowner) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Client stopped", slog.Any("error", err))
			}
			if err := shutdowner.Shutdown(); err != nil {
				slog.Error("Failed to shut down", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
