package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"starfund/config"
	"starfund/internal/infra/auth"
	"starfund/internal/infra/localstore"
	"starfund/internal/infra/persistence/local"
	"starfund/internal/session"
)

// testFixtures wires the services against the in-process mock backend, the
// same composition the client uses when no API endpoint is configured.
type testFixtures struct {
	projects    *local.ProjectStore
	investments *local.InvestmentStore
	users       *local.UserStore
	session     *session.Store
	logger      *slog.Logger
}

func newFixtures(t *testing.T) testFixtures {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	projects := local.NewProjectStore(store, 0)
	investments := local.NewInvestmentStore(store, projects, 0)
	users := local.NewUserStore(store, auth.NewBcryptHasher(), tokens, 0)

	return testFixtures{
		projects:    projects,
		investments: investments,
		users:       users,
		session:     session.New(store, logger),
		logger:      logger,
	}
}
