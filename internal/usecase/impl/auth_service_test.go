package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starfund/internal/domain/entity"
	"starfund/internal/usecase"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, testFixtures) {
	t.Helper()
	f := newFixtures(t)
	service := NewAuthService(AuthServiceParams{
		Auth:    f.users,
		Session: f.session,
		Logger:  f.logger,
	})

	return service, f
}

func TestLoginSetsSession(t *testing.T) {
	service, f := newAuthService(t)

	user, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@test.com",
		Password: "admin@123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, f.session.IsAuthenticated())
	assert.Equal(t, user.ID, f.session.Current().ID)
}

func TestLoginUnknownEmailSurfacesLocalizedMessage(t *testing.T) {
	service, f := newAuthService(t)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@test.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, "Email hoặc mật khẩu không đúng", errorMessage(err))
	assert.False(t, f.session.IsAuthenticated())
}

func TestLoginRejectsMalformedInput(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "not-an-email",
		Password: "x",
	})
	require.Error(t, err)
}

func TestRegisterSignsUserIn(t *testing.T) {
	service, f := newAuthService(t)

	user, err := service.Register(context.Background(), usecase.RegisterInput{
		Email:    "founder@new.vn",
		Password: "secret123",
		Name:     "Người Sáng Lập",
		Role:     entity.RoleStartup,
		Company:  "Công ty Mới",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStartup, user.Role)
	assert.NotEmpty(t, user.Token)
	assert.True(t, f.session.IsAuthenticated())
}

func TestRegisterRejectsPrivilegedRoles(t *testing.T) {
	service, _ := newAuthService(t)

	for _, role := range []entity.Role{entity.RoleCVA, entity.RoleAdmin} {
		_, err := service.Register(context.Background(), usecase.RegisterInput{
			Email:    "escalation@test.com",
			Password: "secret123",
			Name:     "X",
			Role:     role,
		})
		require.Error(t, err, "role %s", role)
	}
}

func TestRefreshWhenSignedOutIsNoop(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRefreshWithDeadTokenSignsOut(t *testing.T) {
	service, f := newAuthService(t)

	require.NoError(t, f.session.Set(&entity.User{ID: 1, Token: "garbage-token"}))

	user, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, f.session.IsAuthenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	service, f := newAuthService(t)

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Email:    "investor@test.com",
		Password: "123456",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout())
	assert.False(t, f.session.IsAuthenticated())
}
