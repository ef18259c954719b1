package navigator

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"starfund/internal/domain/entity"
	"starfund/internal/infra/localstore"
	"starfund/internal/session"
)

func newTestNavigator(t *testing.T) (*Navigator, *session.Store) {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	sess := session.New(store, logger)

	return New(sess, logger), sess
}

func TestStartsAtHome(t *testing.T) {
	nav, _ := newTestNavigator(t)
	require.Equal(t, PageHome, nav.Current().CurrentPage)
}

func TestProjectPagesAttachSelectedProject(t *testing.T) {
	project := &entity.Project{ID: 7, Title: "EcoCharge"}

	for _, page := range []Page{PageProjectDetail, PageReviewDetail, PageEditProject, PagePayment} {
		nav, _ := newTestNavigator(t)
		nav.Navigate(page, project)

		state := nav.Current()
		require.Equal(t, page, state.CurrentPage)
		require.Equal(t, project, state.SelectedProject)
		require.Nil(t, state.SelectedBlog)
	}
}

func TestBlogDetailLeavesSelectedProjectAlone(t *testing.T) {
	nav, _ := newTestNavigator(t)
	project := &entity.Project{ID: 7}
	blog := &entity.Blog{ID: 2, Title: "Gọi vốn 101"}

	nav.Navigate(PageProjectDetail, project)
	nav.Navigate(PageBlogDetail, blog)

	state := nav.Current()
	require.Equal(t, PageBlogDetail, state.CurrentPage)
	require.Equal(t, blog, state.SelectedBlog)
	require.Equal(t, project, state.SelectedProject)
}

func TestContextFreePageKeepsSlots(t *testing.T) {
	nav, _ := newTestNavigator(t)
	project := &entity.Project{ID: 7}

	nav.Navigate(PageProjectDetail, project)
	nav.Navigate(PageExplore, nil)

	state := nav.Current()
	require.Equal(t, PageExplore, state.CurrentPage)
	require.Equal(t, project, state.SelectedProject)
}

func TestUnknownPageFallsBackToHome(t *testing.T) {
	nav, _ := newTestNavigator(t)
	nav.Navigate(Page("does-not-exist"), nil)
	require.Equal(t, PageHome, nav.Current().CurrentPage)
}

func TestLoginRedirectsByRole(t *testing.T) {
	cases := []struct {
		role entity.Role
		want Page
	}{
		{entity.RoleInvestor, PageInvestorDashboard},
		{entity.RoleStartup, PageStartupDashboard},
		{entity.RoleCVA, PageCVADashboard},
		{entity.RoleAdmin, PageAdminDashboard},
	}

	for _, tc := range cases {
		nav, _ := newTestNavigator(t)
		nav.OnLogin(&entity.User{Role: tc.role})
		require.Equal(t, tc.want, nav.Current().CurrentPage, "role %s", tc.role)
	}
}

func TestRegisterRedirectsByRole(t *testing.T) {
	nav, _ := newTestNavigator(t)
	nav.OnRegister(&entity.User{Role: entity.RoleInvestor})
	require.Equal(t, PageHome, nav.Current().CurrentPage)

	nav, _ = newTestNavigator(t)
	nav.OnRegister(&entity.User{Role: entity.RoleStartup})
	require.Equal(t, PageStartupDashboard, nav.Current().CurrentPage)
}

func TestLogoutClearsSessionAndGoesHome(t *testing.T) {
	nav, sess := newTestNavigator(t)
	require.NoError(t, sess.Set(&entity.User{ID: 1, Token: "tok"}))

	nav.Navigate(PageAdminDashboard, nil)
	require.NoError(t, nav.Logout())

	require.Equal(t, PageHome, nav.Current().CurrentPage)
	require.False(t, sess.IsAuthenticated())
}
