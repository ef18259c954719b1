package local

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"starfund/config"
	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/infra/auth"
	"starfund/internal/infra/localstore"
)

func newTestBackend(t *testing.T) (*ProjectStore, *InvestmentStore, *UserStore) {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	projects := NewProjectStore(store, 0)
	investments := NewInvestmentStore(store, projects, 0)
	users := NewUserStore(store, auth.NewBcryptHasher(), tokens, 0)

	return projects, investments, users
}

func TestProjectStoreSeedsApprovedAndPending(t *testing.T) {
	projects, _, _ := newTestBackend(t)
	ctx := context.Background()

	approved, err := projects.ListApproved(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, approved)
	for _, p := range approved {
		require.Equal(t, entity.ProjectApproved, p.Status)
	}

	pending, err := projects.ListPending(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pending)
	for _, p := range pending {
		require.Equal(t, entity.ProjectPending, p.Status)
	}
}

func TestProjectCreateStartsPendingWithFreshID(t *testing.T) {
	projects, _, _ := newTestBackend(t)
	ctx := context.Background()

	first, err := projects.Create(ctx, &entity.Project{
		Title:        "Dự án một",
		Description:  "Mô tả",
		FounderID:    4,
		TargetAmount: 1000,
		Status:       entity.ProjectApproved, // must be ignored
	})
	require.NoError(t, err)
	require.Equal(t, entity.ProjectPending, first.Status)
	require.Zero(t, first.CurrentAmount)
	require.Zero(t, first.InvestorCount)

	second, err := projects.Create(ctx, &entity.Project{
		Title:     "Dự án hai",
		FounderID: 4,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID+1, second.ID)
}

func TestApproveIsIdempotent(t *testing.T) {
	projects, _, _ := newTestBackend(t)
	ctx := context.Background()

	created, err := projects.Create(ctx, &entity.Project{Title: "Chờ duyệt", FounderID: 4})
	require.NoError(t, err)

	approved, err := projects.Approve(ctx, created.ID, "ok")
	require.NoError(t, err)
	require.Equal(t, entity.ProjectApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	again, err := projects.Approve(ctx, created.ID, "ok again")
	require.NoError(t, err)
	require.Equal(t, approved.ApprovedAt, again.ApprovedAt)
	require.Equal(t, approved.ReviewFeedback, again.ReviewFeedback)
}

func TestApproveMissingProjectFails(t *testing.T) {
	projects, _, _ := newTestBackend(t)

	_, err := projects.Approve(context.Background(), 99999, "ok")
	require.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestInvestmentCreditsOnlyTargetProject(t *testing.T) {
	projects, investments, _ := newTestBackend(t)
	ctx := context.Background()

	approved, err := projects.ListApproved(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(approved), 2)

	target, other := approved[0], approved[1]

	inv, err := investments.Create(ctx, &entity.Investment{
		ProjectID:     target.ID,
		InvestorID:    3,
		InvestorName:  "Nhà Đầu Tư",
		Amount:        2500,
		PaymentMethod: "vnpay",
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvestmentPending, inv.Status)
	require.Equal(t, target.Title, inv.ProjectTitle)

	after, err := projects.FindByID(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, target.CurrentAmount+2500, after.CurrentAmount)
	require.Equal(t, target.InvestorCount+1, after.InvestorCount)

	untouched, err := projects.FindByID(ctx, other.ID)
	require.NoError(t, err)
	require.Equal(t, other.CurrentAmount, untouched.CurrentAmount)
	require.Equal(t, other.InvestorCount, untouched.InvestorCount)
}

func TestInvestmentMayExceedGoal(t *testing.T) {
	projects, investments, _ := newTestBackend(t)
	ctx := context.Background()

	approved, err := projects.ListApproved(ctx)
	require.NoError(t, err)
	target := approved[0]

	_, err = investments.Create(ctx, &entity.Investment{
		ProjectID:  target.ID,
		InvestorID: 3,
		Amount:     target.TargetAmount * 2,
	})
	require.NoError(t, err)

	after, err := projects.FindByID(ctx, target.ID)
	require.NoError(t, err)
	require.Greater(t, after.CurrentAmount, after.TargetAmount)
}

func TestSearchMatchesTitleAndDescription(t *testing.T) {
	projects, _, _ := newTestBackend(t)
	ctx := context.Background()

	results, err := projects.Search(ctx, "ecocharge")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	none, err := projects.Search(ctx, "no such project anywhere")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestLoginSeedAdmin(t *testing.T) {
	_, _, users := newTestBackend(t)

	user, err := users.Login(context.Background(), "admin@test.com", "admin@123")
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, user.Role)
	require.NotEmpty(t, user.Token)
}

func TestLoginUnknownEmailFails(t *testing.T) {
	_, _, users := newTestBackend(t)

	_, err := users.Login(context.Background(), "nobody@test.com", "whatever")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)

	_, err = users.Login(context.Background(), "admin@test.com", "wrong password")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestRegisterThenLogin(t *testing.T) {
	_, _, users := newTestBackend(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, repository.Registration{
		Email:    "new@test.com",
		Password: "secret123",
		Name:     "Người Mới",
		Role:     entity.RoleInvestor,
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)

	_, err = users.Register(ctx, repository.Registration{
		Email:    "NEW@test.com",
		Password: "other",
		Name:     "Trùng Email",
		Role:     entity.RoleInvestor,
	})
	require.ErrorIs(t, err, repository.ErrEmailTaken)

	logged, err := users.Login(ctx, "new@test.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, logged.ID)

	current, err := users.CurrentUser(ctx, logged.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, current.ID)
}

func TestBannedUserCannotLogin(t *testing.T) {
	_, _, users := newTestBackend(t)
	ctx := context.Background()

	admin, err := users.Login(ctx, "admin@test.com", "admin@123")
	require.NoError(t, err)

	_, err = users.UpdateStatus(ctx, admin.ID, entity.UserBanned)
	require.NoError(t, err)

	_, err = users.Login(ctx, "admin@test.com", "admin@123")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestDataSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := localstore.New(dir)
	require.NoError(t, err)
	projects := NewProjectStore(store, 0)
	created, err := projects.Create(ctx, &entity.Project{Title: "Bền vững", FounderID: 4})
	require.NoError(t, err)

	reopened, err := localstore.New(dir)
	require.NoError(t, err)
	fresh := NewProjectStore(reopened, 0)
	found, err := fresh.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, found.Title)
}

func TestVNPayRoundTripSettlesInvestment(t *testing.T) {
	projects, investments, _ := newTestBackend(t)
	ctx := context.Background()

	cfg := &config.Config{VNPay: &config.VNPayConfig{
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		TmnCode:    "2QXUI4J4",
		HashSecret: "RAOEXHYFYPOIJDOQRIQYMOABEPJQVJWX",
		ReturnURL:  "http://localhost:8080/payment/callback",
	}}
	gateway, err := NewVNPayGateway(cfg, investments)
	require.NoError(t, err)

	approved, err := projects.ListApproved(ctx)
	require.NoError(t, err)
	inv, err := investments.Create(ctx, &entity.Investment{
		ProjectID:  approved[0].ID,
		InvestorID: 3,
		Amount:     5000,
	})
	require.NoError(t, err)

	payURL, err := gateway.CreatePaymentURL(ctx, repository.PaymentRequest{
		Amount:       inv.Amount,
		InvestmentID: inv.ID,
	})
	require.NoError(t, err)

	parsed, err := url.Parse(payURL)
	require.NoError(t, err)
	query := parsed.Query()
	require.Equal(t, "500000", query.Get("vnp_Amount"))
	require.NotEmpty(t, query.Get("vnp_SecureHash"))

	// Simulate the gateway redirect: same signed params plus the outcome.
	callback := url.Values{}
	for key, values := range query {
		if key == "vnp_SecureHash" {
			continue
		}
		callback.Set(key, values[0])
	}
	callback.Set("vnp_ResponseCode", "00")
	callback.Set("vnp_TransactionNo", "14400996")
	callback.Set("vnp_SecureHash", hmacSHA512(cfg.VNPay.HashSecret, hashData(callback)))

	result, err := gateway.VerifyCallback(ctx, callback)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "Giao dịch thành công", result.Message)

	settled, err := investments.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvestmentCompleted, settled.Status)
	require.NotNil(t, settled.CompletedAt)
}

func TestVNPayRejectsTamperedCallback(t *testing.T) {
	_, investments, _ := newTestBackend(t)

	cfg := &config.Config{VNPay: &config.VNPayConfig{
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		TmnCode:    "2QXUI4J4",
		HashSecret: "RAOEXHYFYPOIJDOQRIQYMOABEPJQVJWX",
	}}
	gateway, err := NewVNPayGateway(cfg, investments)
	require.NoError(t, err)

	callback := url.Values{}
	callback.Set("vnp_TxnRef", "1")
	callback.Set("vnp_ResponseCode", "00")
	callback.Set("vnp_SecureHash", "deadbeef")

	result, err := gateway.VerifyCallback(context.Background(), callback)
	require.NoError(t, err)
	require.False(t, result.Success)
}

func TestTransactionsDeriveFromInvestments(t *testing.T) {
	projects, investments, _ := newTestBackend(t)
	ctx := context.Background()
	log := NewTransactionLog(investments)

	approved, err := projects.ListApproved(ctx)
	require.NoError(t, err)
	inv, err := investments.Create(ctx, &entity.Investment{
		ProjectID:  approved[0].ID,
		InvestorID: 3,
		Amount:     1200,
	})
	require.NoError(t, err)

	txs, err := log.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, inv.ID, txs[0].InvestmentID)
	require.Equal(t, entity.TransactionInvestment, txs[0].Type)
	require.Equal(t, inv.Amount, txs[0].Amount)
}

func TestOverallStatistics(t *testing.T) {
	projects, investments, users := newTestBackend(t)
	ctx := context.Background()
	stats := NewStatistics(projects, investments, users)

	overall, err := stats.Overall(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, overall.TotalProjects)
	require.Equal(t, 1, overall.PendingProjects)
	require.Equal(t, 2, overall.ApprovedProjects)
	require.Equal(t, 1, overall.TotalInvestors)
	require.Equal(t, 1, overall.TotalStartups)
}
