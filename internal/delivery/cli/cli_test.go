package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"starfund/internal/domain/entity"
	"starfund/internal/infra/localstore"
	"starfund/internal/navigator"
	"starfund/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := session.New(store, logger)
	nav := navigator.New(sess, logger)

	out := &bytes.Buffer{}
	c := &cli{
		params: CLIParams{Session: sess, Navigator: nav, Logger: logger},
		out:    out,
	}

	return c, out
}

func TestPrintProjectsRemembersListOrder(t *testing.T) {
	c, out := newTestCLI(t)

	c.printProjects([]entity.Project{
		{ID: 7, Title: "Nông nghiệp thông minh", Status: entity.ProjectApproved, TargetAmount: 500000000},
		{ID: 9, Title: "Giáo dục trực tuyến", Status: entity.ProjectActive, TargetAmount: 300000000},
	})

	assert.Contains(t, out.String(), "Nông nghiệp thông minh")
	require.Len(t, c.lastProjects, 2)
	assert.Equal(t, int64(9), c.lastProjects[1].ID)
}

func TestPrintProjectsEmpty(t *testing.T) {
	c, out := newTestCLI(t)

	c.printProjects(nil)

	assert.Contains(t, out.String(), "Chưa có dự án nào")
	assert.Empty(t, c.lastProjects)
}

func TestOpenBlogPostNavigatesToDetail(t *testing.T) {
	c, _ := newTestCLI(t)
	c.params.Navigator.Navigate(navigator.PageBlog, nil)

	require.NoError(t, c.open([]string{"2"}))

	state := c.params.Navigator.Current()
	assert.Equal(t, navigator.PageBlogDetail, state.CurrentPage)
	require.NotNil(t, state.SelectedBlog)
	assert.Equal(t, int64(2), state.SelectedBlog.ID)
}

func TestOpenProjectFromReviewListTargetsReviewDetail(t *testing.T) {
	c, _ := newTestCLI(t)
	c.params.Navigator.Navigate(navigator.PageReviewProjects, nil)
	c.printProjects([]entity.Project{{ID: 3, Title: "Dự án chờ duyệt", Status: entity.ProjectPending}})

	require.NoError(t, c.open([]string{"1"}))

	state := c.params.Navigator.Current()
	assert.Equal(t, navigator.PageReviewDetail, state.CurrentPage)
	require.NotNil(t, state.SelectedProject)
	assert.Equal(t, int64(3), state.SelectedProject.ID)
}

func TestOpenRejectsOutOfRangeIndex(t *testing.T) {
	c, _ := newTestCLI(t)
	c.printProjects([]entity.Project{{ID: 1, Title: "Duy nhất"}})

	assert.Error(t, c.open([]string{"5"}))
	assert.Error(t, c.open([]string{"0"}))
	assert.Error(t, c.open([]string{"x"}))
}

func TestFindBlog(t *testing.T) {
	post := findBlog(3)
	require.NotNil(t, post)
	assert.Equal(t, "Thanh toán an toàn qua VNPay", post.Title)

	assert.Nil(t, findBlog(99))
}
