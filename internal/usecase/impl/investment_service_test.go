package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfund/internal/domain/entity"
	"starfund/internal/usecase"
)

func newInvestmentService(t *testing.T) (usecase.InvestmentUsecase, testFixtures) {
	t.Helper()
	f := newFixtures(t)
	service := NewInvestmentService(InvestmentServiceParams{
		Repo:     f.investments,
		Projects: f.projects,
		Session:  f.session,
		Logger:   f.logger,
	})

	return service, f
}

func signInInvestor(t *testing.T, f testFixtures) {
	t.Helper()
	require.NoError(t, f.session.Set(&entity.User{
		ID:    3,
		Name:  "Nhà Đầu Tư",
		Email: "investor@test.com",
		Role:  entity.RoleInvestor,
		Token: "tok",
	}))
}

func TestInvestRequiresSession(t *testing.T) {
	service, _ := newInvestmentService(t)

	_, err := service.Invest(context.Background(), usecase.InvestInput{
		ProjectID:     1,
		Amount:        1000,
		PaymentMethod: "vnpay",
	})
	require.Error(t, err)
}

func TestInvestInApprovedProject(t *testing.T) {
	service, f := newInvestmentService(t)
	signInInvestor(t, f)
	ctx := context.Background()

	approved, err := f.projects.ListApproved(ctx)
	require.NoError(t, err)
	target := approved[0]

	inv, err := service.Invest(ctx, usecase.InvestInput{
		ProjectID:     target.ID,
		Amount:        3000,
		PaymentMethod: "vnpay",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvestmentPending, inv.Status)
	assert.Equal(t, int64(3), inv.InvestorID)
	assert.Equal(t, "Nhà Đầu Tư", inv.InvestorName)

	mine, err := service.MyInvestments(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestInvestInPendingProjectFails(t *testing.T) {
	service, f := newInvestmentService(t)
	signInInvestor(t, f)
	ctx := context.Background()

	pending, err := f.projects.ListPending(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pending)

	_, err = service.Invest(ctx, usecase.InvestInput{
		ProjectID:     pending[0].ID,
		Amount:        1000,
		PaymentMethod: "vnpay",
	})
	require.Error(t, err)
	assert.Equal(t, "Dự án chưa mở nhận đầu tư", errorMessage(err))
}

func TestInvestRejectsNonPositiveAmount(t *testing.T) {
	service, f := newInvestmentService(t)
	signInInvestor(t, f)

	_, err := service.Invest(context.Background(), usecase.InvestInput{
		ProjectID:     1,
		Amount:        0,
		PaymentMethod: "vnpay",
	})
	require.Error(t, err)
}

func TestTotalInvestedCountsOnlyCompleted(t *testing.T) {
	service, f := newInvestmentService(t)
	signInInvestor(t, f)
	ctx := context.Background()

	approved, err := f.projects.ListApproved(ctx)
	require.NoError(t, err)

	inv, err := service.Invest(ctx, usecase.InvestInput{
		ProjectID:     approved[0].ID,
		Amount:        4000,
		PaymentMethod: "vnpay",
	})
	require.NoError(t, err)

	total, err := service.TotalInvested(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = f.investments.Settle(ctx, inv.ID, entity.InvestmentCompleted)
	require.NoError(t, err)

	total, err = service.TotalInvested(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, total)
}
